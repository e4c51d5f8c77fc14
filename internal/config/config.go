package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Study    StudyConfig    `mapstructure:"study"    validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the storage backend settings. SQLite is the default
// for single-machine personal use; PostgreSQL is available for a hosted setup.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	// URL is the DSN: a file path (or ":memory:") for sqlite, a postgres://
	// connection string for postgres.
	URL string `mapstructure:"url" validate:"required"`
}

// StudyConfig tunes the study-session engine.
type StudyConfig struct {
	// SessionCap bounds the size of a random-practice queue so sessions stay
	// finite.
	SessionCap int `mapstructure:"session_cap" validate:"required,gt=0"`

	// RecencyWindow is how many recently shown words are remembered to
	// discourage immediate repetition when refilling practice queues.
	RecencyWindow int `mapstructure:"recency_window" validate:"gte=0"`

	// DistractorCount is how many wrong options accompany the correct answer
	// in multiple-choice mode.
	DistractorCount int `mapstructure:"distractor_count" validate:"required,gt=0"`
}
