package main

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../../../schema/schema.sql")
	require.NoError(t, err)
	return string(raw)
}

// The application Notifier is the only emitter on the injury_changes
// channel. A schema-level trigger would make every committed write
// deliver twice to each LISTEN subscriber, with a now() timestamp
// instead of the reconciled check_date.
func TestSchemaInstallsNoNotifyEmitter(t *testing.T) {
	schema := readSchema(t)
	lower := strings.ToLower(schema)

	assert.NotContains(t, lower, "pg_notify", "schema must not emit on injury_changes")
	assert.NotRegexp(t, regexp.MustCompile(`(?m)^\s*create\s+trigger`), lower)

	// Earlier revisions shipped a trigger; the migration must remove it.
	assert.Contains(t, lower, "drop trigger if exists injuries_current_notify")
	assert.Contains(t, lower, "drop function if exists notify_injury_change")
}

func TestSchemaStatementsAreIdempotent(t *testing.T) {
	schema := readSchema(t)

	creates := regexp.MustCompile(`(?im)^\s*create\s+(table|index)`).FindAllString(schema, -1)
	require.NotEmpty(t, creates)
	guarded := regexp.MustCompile(`(?im)^\s*create\s+(table|index)\s+if\s+not\s+exists`).FindAllString(schema, -1)
	assert.Len(t, guarded, len(creates), "every CREATE TABLE/INDEX carries IF NOT EXISTS")
}
