package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"todo-api/configs"
)

var properties map[string]any
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads application properties from YAML
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
		return
	}
	InitFromBytes(configs.ApplicationYAML)
}

// Init loads the properties file at filepath, replacing the current properties
func Init(filepath string) {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	load()
}

// InitFromBytes loads properties from an in-memory YAML document
func InitFromBytes(content []byte) {
	viper.SetConfigType("yml")

	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	load()
}

func load() {
	properties = make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	if err := viper.MergeConfigMap(properties); err != nil {
		log.Fatalf("Error to load application properties: %v", err)
	}
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		case []any:
			result[fullKey] = v
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable resolves ${ENV:default} patterns, plain values are kept as they are
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if defaultValue != "" {
		return defaultValue
	}
	return nil
}

// Set overrides a property at runtime, flags and tests use it
func Set(key string, value any) {
	viper.Set(key, value)
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetCommaSeparated splits a comma separated property, ignoring blank entries
func GetCommaSeparated(key string) []string {
	raw := viper.GetStringSlice(key)
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}
