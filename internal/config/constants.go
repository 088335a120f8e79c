package config

import "time"

// Configuration file paths
const (
	ConfigPathScoring = "configs/scoring.yaml"
)

// Environment defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "tribal-score"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "tribalscore"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultWorkerCount            = 4
	DefaultStandingsCacheSize     = 512
	DefaultStandingsCacheTTL      = 5 * time.Minute
	DefaultPriceRecomputeInterval = time.Hour
	DefaultEventMaxRetries        = 3
	DefaultEventRetryDelay        = 2 * time.Second
	DefaultDeadLetterPath         = "logs/event_deadletter.jsonl"

	DefaultEventLogRetentionDays   = 90
	DefaultEventLogCleanupInterval = 24 * time.Hour
)

// Scoring config loader
const (
	// ScoringEnvPrefix prefixes env overrides of the scoring YAML, e.g.
	// TRIBAL_SCORING__SURVIVAL_PRE_MERGE=3 sets scoring.survival_pre_merge
	ScoringEnvPrefix = "TRIBAL_"
	// scoringEnvNesting separates nested keys inside an env variable name
	scoringEnvNesting = "__"
	koanfDelimiter    = "."
	koanfTag          = "koanf"
)
