package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения. Инициализируется один раз в main.
var Log *logrus.Logger

// Init настраивает глобальный логгер из переменных окружения:
// LOG_LEVEL (debug/info/warn/error, по умолчанию info) и
// LOG_FORMAT ("json" для сбора логов, иначе цветной текст).
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// WithComponent возвращает логгер с полем component - общий способ
// помечать подсистему (sim, server, ...).
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
