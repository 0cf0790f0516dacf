package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const productionEnvironment = "production"

type EnvConfig struct {
	ApplicationName string
	Environment     string
}

var Env *EnvConfig

func init() {
	// .env is optional, the process environment always wins
	_ = godotenv.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-api"),
		Environment:     getStringOrDefault("APP_ENV", "development"),
	}
}

// IsProduction reports whether the process runs in the hardened deployment mode
func (env *EnvConfig) IsProduction() bool {
	return env.Environment == productionEnvironment
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
