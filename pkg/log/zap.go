package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todo-api/configs"
)

var (
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		levelFromEnv(),
	)

	logger = zap.New(core,
		zap.Fields(zap.String("logName", configs.Env.ApplicationName)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// levelFromEnv reads LOG_LEVEL, defaulting to info on absent or unknown values
func levelFromEnv() zapcore.Level {
	level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zap.InfoLevel
	}
	return level
}

// Info logs a message at InfoLevel with the given fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...any) {
	Logger.Infof(message, args...)
}

// Debug logs a message at DebugLevel with the given fields.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Warn logs a message at WarnLevel with the given fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Error logs a message at ErrorLevel with the given fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...any) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = logger.Sync()
}
