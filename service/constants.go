package service

const (
	// AnnualMonths is the horizon used to convert annual figures to monthly
	// ones and the default capital-cost simulation length.
	AnnualMonths = 12

	// Defaults mirrored by the presentation layer.
	DefaultPurchasePrice   = 100.0
	DefaultAnnualRate      = 0.15 // reference (SELIC) rate
	DefaultProfitRate      = 0.20
	DefaultInterestRatePct = 12.0
	DefaultSellerMargin    = 0.10
	DefaultSweepDelta      = 3

	MaxPurchasePrice  = 1_000_000_000.0 // 1 billion
	MaxInterestRate   = 10.0            // 1000% annual, as a decimal
	MaxScheduleMonths = 600             // 50 years
	MaxSweepDelta     = 25              // percentage points per side

	// BreakEvenCacheSize bounds the break-even rate memoization cache.
	BreakEvenCacheSize = 128
)
