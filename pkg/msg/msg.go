package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"todo-api/configs"
)

var messages map[string]string

// init loads messages from YAML
func init() {
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		Init(value)
		return
	}
	InitFromBytes(configs.MessagesYAML)
}

// Init loads the messages file at filepath. Messages use their own viper instance so
// they never shadow the application properties.
func Init(filepath string) {
	reader := viper.New()
	reader.SetConfigFile(filepath)
	reader.SetConfigType("yml")

	if err := reader.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
	load(reader)
}

// InitFromBytes loads messages from an in-memory YAML document
func InitFromBytes(content []byte) {
	reader := viper.New()
	reader.SetConfigType("yml")

	if err := reader.ReadConfig(bytes.NewReader(content)); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
	load(reader)
}

func load(reader *viper.Viper) {
	loaded := make(map[string]string)
	parseMessageMap("", reader.AllSettings(), loaded)
	messages = loaded
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns a msg and format
func GetMessage(key string, args ...any) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		msg = strings.ReplaceAll(msg, placeholder, argStr)
	}

	return msg
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value any) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to string using strconv for better performance
func primitiveToString(value any) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
