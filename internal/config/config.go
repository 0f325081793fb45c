package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Settings is the runtime configuration snapshot read by every command.
// Optional fields are pointers: nil means the variable was never set, which
// the readiness checks treat differently from an empty value.
type Settings struct {
	Debug             bool     `env:"DEBUG" envDefault:"false"`
	SecretKey         string   `env:"SECRET_KEY"`
	TenantDomain      *string  `env:"TENANT_DOMAIN"`
	AllowedHosts      []string `env:"ALLOWED_HOSTS" envSeparator:","`
	TenantModel       *string  `env:"TENANT_MODEL"`
	TenantDomainModel *string  `env:"TENANT_DOMAIN_MODEL"`
	RedisURL          string   `env:"REDIS_URL" envDefault:"redis://127.0.0.1:6379/1"`
	StaticRoot        string   `env:"STATIC_ROOT"`
	Database          Database `envPrefix:"DB_"`
}

// Database holds the DB_* connection variables.
type Database struct {
	Name     string `env:"NAME"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	SSLMode  string `env:"SSLMODE" envDefault:"require"`
}

// Load parses Settings from the process environment. A malformed value is a
// hard error; callers are expected to exit rather than continue with a
// partial snapshot.
func Load() (Settings, error) {
	var cfg Settings
	if err := env.Parse(&cfg); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN assembles a PostgreSQL connection string from the DB_* fields.
// url.URL handles userinfo escaping; query escaping would turn spaces into
// "+", which is a literal plus in that component.
func (s Settings) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.Database.User, s.Database.Password),
		Host:     s.Database.Host + ":" + s.Database.Port,
		Path:     s.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(s.Database.SSLMode),
	}
	return u.String()
}

// SSLEnabled reports whether the database connection requires TLS.
func (s Settings) SSLEnabled() bool {
	return s.Database.SSLMode != "" && s.Database.SSLMode != "disable"
}
