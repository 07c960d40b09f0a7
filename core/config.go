package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		// Latency delays every API response to mimic a remote backend.
		Latency time.Duration
	}

	FixturesConfig struct {
		// empty paths load the embedded fixtures
		StudentsPath   string
		AttendancePath string
	}

	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		// InsightsSeed seeds the synthetic insights generator; 0 seeds from the clock.
		InsightsSeed int64
		Server       ServerConfig
		Fixtures     FixturesConfig
	}
)

func newViper(env string) *viper.Viper {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Attendo")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("insightsSeed", int64(0))
	v.SetDefault("serverAddress", ":8000")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverReadTimeout", 5*time.Second)
	v.SetDefault("serverWriteTimeout", 5*time.Second)
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("serverLatency", time.Duration(0))
	v.SetDefault("fixturesStudentsPath", "")
	v.SetDefault("fixturesAttendancePath", "")

	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.AutomaticEnv()
	return v
}

// loadDotEnv loads config/.env.<env> if it exists (ignored if it does not).
func loadDotEnv(env string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		return errors.Wrapf(godotenv.Load(dotEnvPath), "loading %s", dotEnvPath)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	return nil
}

// NewConfig reads the configuration for the current ENV (DEV (default), TEST, QA, PROD).
// Environment variables are prefixed with the ENV, e.g. PROD_SERVERADDRESS.
func NewConfig() (*Config, error) {
	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if err := loadDotEnv(env); err != nil {
		return nil, errors.Wrap(err, "config")
	}

	v := newViper(env)
	return &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		InsightsSeed: v.GetInt64("insightsSeed"),
		Server: ServerConfig{
			Address:         v.GetString("serverAddress"),
			DebugHost:       v.GetString("serverDebugHost"),
			ReadTimeout:     v.GetDuration("serverReadTimeout"),
			WriteTimeout:    v.GetDuration("serverWriteTimeout"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
			Latency:         v.GetDuration("serverLatency"),
		},
		Fixtures: FixturesConfig{
			StudentsPath:   v.GetString("fixturesStudentsPath"),
			AttendancePath: v.GetString("fixturesAttendancePath"),
		},
	}, nil
}
