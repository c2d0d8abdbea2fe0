package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugHost       string
		Host            string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	SchoolConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	SheetsConfig struct {
		TTL           time.Duration
		SweepInterval time.Duration
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		Locale       string
		RollbarToken string
		APIToken     string // CLI only

		Server ServerConfig
		School SchoolConfig
		Sheets SheetsConfig
	}
)

// NewConfig loads the configuration from defaults, the optional `config/.env.{env}` file and the environment.
// Environment variables are prefixed with the upper-cased ENV, e.g. `PROD_SCHOOL_BASEURL`.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "Rapor")
	conf.SetDefault("locale", "en")
	conf.SetDefault("rollbar.token", "")
	conf.SetDefault("apiToken", "")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("school.baseURL", "http://localhost:8080")
	conf.SetDefault("school.timeout", 15*time.Second)
	conf.SetDefault("sheets.ttl", 2*time.Hour)
	conf.SetDefault("sheets.sweepInterval", 10*time.Minute)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Locale:       CleanString(conf.GetString("locale"), true /* lower */),
		RollbarToken: conf.GetString("rollbar.token"),
		APIToken:     conf.GetString("apiToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			DebugHost:       conf.GetString("server.debugHost"),
			Host:            conf.GetString("server.host"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		School: SchoolConfig{
			BaseURL: strings.TrimSuffix(conf.GetString("school.baseURL"), "/"),
			Timeout: conf.GetDuration("school.timeout"),
		},
		Sheets: SheetsConfig{
			TTL:           conf.GetDuration("sheets.ttl"),
			SweepInterval: conf.GetDuration("sheets.sweepInterval"),
		},
	}
}
