package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags, plus defaults() for
// bools that default to true).
// The YAML path comes from CONFIG_PATH, falling back to ./config.yaml; a
// missing fallback file is not an error. Hosting conventions are honoured
// last: DATABASE_URL or PG* for the database and PORT for the listener.
func Load() (*Config, error) {
	cfg := defaults()

	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := applyHostingEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func applyHostingEnv(cfg *Config) error {
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = dsnFromEnv()
	}

	if _, set := os.LookupEnv("SERVER_PORT"); !set {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("PORT %q is not a number", v)
			}
			cfg.Server.Port = port
		}
	}
	return nil
}

// dsnFromEnv returns DATABASE_URL, or a URL assembled from PGHOST, PGPORT,
// PGUSER, PGPASSWORD and PGDATABASE when PGHOST is set, or "".
func dsnFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	host := os.Getenv("PGHOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("PGPORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + os.Getenv("PGDATABASE"),
	}
	if user := os.Getenv("PGUSER"); user != "" {
		if pass, ok := os.LookupEnv("PGPASSWORD"); ok {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}
