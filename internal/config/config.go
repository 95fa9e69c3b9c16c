package config

import "github.com/spf13/viper"

// Config carries the runtime settings of the app. Everything comes from
// environment variables with sensible local defaults, viper-style.
type Config struct {
	DBPath            string
	PrefsPath         string
	LowStockThreshold int
	LogLevel          string
	Reset             bool
	SeedDemo          bool
}

// Load reads the configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.SetDefault("DB_PATH", "gudang.db")
	v.SetDefault("PREFS_PATH", "gudang_prefs.db")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RESET", false)
	v.SetDefault("SEED_DEMO", false)
	v.AutomaticEnv()

	return &Config{
		DBPath:            v.GetString("DB_PATH"),
		PrefsPath:         v.GetString("PREFS_PATH"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		Reset:             v.GetBool("RESET"),
		SeedDemo:          v.GetBool("SEED_DEMO"),
	}
}
