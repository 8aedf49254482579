package config

import "time"

type AppConfig struct {
	Server      ServerConfig      `envPrefix:"SERVER_"`
	Database    DatabaseConfig    `envPrefix:"DB_"`
	Maintenance MaintenanceConfig `envPrefix:"MAINTENANCE_"`
}

type ServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig selects the relational store. Path is only used by the
// sqlite driver; Host..Name only by mysql.
type DatabaseConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	Path   string `env:"PATH" envDefault:"/app/data/hospital.db"`

	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD" envDefault:"password"`
	Name     string `env:"NAME" envDefault:"hospital"`

	MaxOpenConns int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"10s"`
}

type MaintenanceConfig struct {
	// Schedule is a cron spec; empty leaves the scheduler stopped at startup.
	Schedule string `env:"SCHEDULE" envDefault:""`

	RepairOrphans bool `env:"REPAIR_ORPHANS" envDefault:"false"`
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
