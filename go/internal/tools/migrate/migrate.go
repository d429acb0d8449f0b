package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/ttflab/injurytrack/go/internal/dbconfig"
)

// Applies schema/schema.sql to the configured database. The schema is
// written to be idempotent (CREATE ... IF NOT EXISTS, DROP ... IF EXISTS),
// so rerunning is safe.
func main() {
	schemaPath := flag.String("schema", "schema/schema.sql", "path to the schema file")
	flag.Parse()

	// .env is optional here; DB_* may come from the environment.
	_ = godotenv.Load()

	sqlBytes, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read schema: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(context.Background(), string(sqlBytes)); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Schema applied: %s -> %s@%s:%d/%s\n",
		*schemaPath, cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
