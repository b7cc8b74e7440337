package config

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the placement system.
type Config struct {
	AppName       string
	AppEnv        string
	DataDir       string
	SnapshotPath  string
	UsersTextPath string
	SeedUsers     bool
	LogLevel      string
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAREERDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "CareerDesk")
	v.SetDefault("app.env", "development")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.snapshot", "placement.db")
	v.SetDefault("data.users_text", "users.txt")
	v.SetDefault("seed.users", true)
	v.SetDefault("log.level", "info")

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		DataDir:       v.GetString("data.dir"),
		SnapshotPath:  v.GetString("data.snapshot"),
		UsersTextPath: v.GetString("data.users_text"),
		SeedUsers:     v.GetBool("seed.users"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
	}

	if !filepath.IsAbs(cfg.SnapshotPath) {
		cfg.SnapshotPath = filepath.Join(cfg.DataDir, cfg.SnapshotPath)
	}
	if !filepath.IsAbs(cfg.UsersTextPath) {
		cfg.UsersTextPath = filepath.Join(cfg.DataDir, cfg.UsersTextPath)
	}

	return cfg, nil
}
