package domain

// Scoring defaults
const (
	// DefaultCaptainMultiplier applies when the scoring config leaves it unset
	DefaultCaptainMultiplier = 2.0

	// DefaultPocketMultiplier applies when the voted-out pocket multiplier is unset
	DefaultPocketMultiplier = 1.0

	// DefaultPriceAdjustmentRate is the share of the previous price that a
	// maximal over/under-performance can move
	DefaultPriceAdjustmentRate = 0.03
)

// Confessional band thresholds
const (
	ConfessionalsMidThreshold  = 4
	ConfessionalsHighThreshold = 7
)

// FinalThreeSize is the number of contestants at final tribal council
const FinalThreeSize = 3

// Config kinds reported on config.updated events
const (
	ConfigKindScoring = "scoring"
	ConfigKindBPS     = "bps"
)
