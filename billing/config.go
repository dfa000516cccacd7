package billing

import "encore.dev/config"

type TemporalConfig struct {
	Host      config.String
	Namespace config.String
	TaskQueue config.String
	// SignalTimeoutSeconds bounds the delivery of one lifecycle signal.
	SignalTimeoutSeconds config.Int
}

type Config struct {
	BillNumberPrefix config.String
	DefaultDueDays   config.Int
	Temporal         TemporalConfig
}

var cfg = config.Load[*Config]()
