package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug   bool
		Env     string // DEV (default), TEST, QA, PROD
		AppName string

		Database     DatabaseConfig
		DefaultAdmin DefaultAdminConfig
		Rollbar      RollbarConfig
	}

	DatabaseConfig struct {
		// Path is the sqlite database file. ":memory:" is accepted for tests.
		Path string
	}

	// DefaultAdminConfig is the well-known seed admin credential created on
	// first start when no admin account exists. Not a secret; rotate it.
	DefaultAdminConfig struct {
		Username string
		Password string
	}

	RollbarConfig struct {
		Token string
	}
)

func (c Config) IsTest() bool { return c.Env == "TEST" }

// NewConfig loads the app configuration from defaults, an optional
// config/.env.<env> file and environment variables prefixed with the env name.
func NewConfig() (*Config, error) {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appname", "Darasa")
	conf.SetDefault("database.path", "darasa.db")
	conf.SetDefault("defaultadmin.username", "admin")
	conf.SetDefault("defaultadmin.password", "admin123")
	conf.SetDefault("rollbar.token", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetDefault("env", env)
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	conf.AutomaticEnv()

	c := new(Config)
	if err := conf.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	return c, nil
}
