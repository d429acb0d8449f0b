package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ttflab/injurytrack/go/internal/etl"
)

// Config is the optional YAML file tuning the ETL jobs and the loop
// intervals. Durations are Go duration strings ("2h", "600ms").
// Environment variables override individual fields.
type Config struct {
	ETL struct {
		SeasonLabel string `yaml:"season_label"`
		RosterPause string `yaml:"roster_pause"`
	} `yaml:"etl"`
	Intervals struct {
		Injuries string `yaml:"injuries"`
		Schedule string `yaml:"schedule"`
		Rosters  string `yaml:"rosters"`
	} `yaml:"intervals"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

func (c *Config) etlConfig() etl.Config {
	cfg := etl.DefaultConfig()
	if c != nil {
		if c.ETL.SeasonLabel != "" {
			cfg.SeasonLabel = c.ETL.SeasonLabel
		}
		applyDuration(&cfg.RosterPause, c.ETL.RosterPause)
	}
	if season := os.Getenv("NBA_SEASON_LABEL"); season != "" {
		cfg.SeasonLabel = season
	}
	return cfg
}

func (c *Config) runnerConfig() etl.RunnerConfig {
	cfg := etl.DefaultRunnerConfig()
	if c != nil {
		applyDuration(&cfg.InjuriesEvery, c.Intervals.Injuries)
		applyDuration(&cfg.ScheduleEvery, c.Intervals.Schedule)
		applyDuration(&cfg.RostersEvery, c.Intervals.Rosters)
	}
	applyDuration(&cfg.InjuriesEvery, os.Getenv("INJURIES_SYNC_INTERVAL"))
	return cfg
}

func applyDuration(dst *time.Duration, raw string) {
	if raw == "" {
		return
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		*dst = d
	}
}
