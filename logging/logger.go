package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logrus instance
var Logger = logrus.New()
var once sync.Once

// Options controls where and how log entries are written
type Options struct {
	Level  string
	Format string
	File   string
}

// InitLogger configures the global logger. Only the first call has an effect.
func InitLogger(opts Options) {
	once.Do(func() {
		var out io.Writer = os.Stdout
		if opts.File != "" {
			logFile := &lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
			out = io.MultiWriter(os.Stdout, logFile)
		}
		Logger.SetOutput(out)

		if opts.Format == "json" {
			Logger.SetFormatter(&logrus.JSONFormatter{})
		} else {
			Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}

		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		Logger.SetLevel(level)

		Logger.WithFields(logrus.Fields{
			"level":  level.String(),
			"format": opts.Format,
			"file":   opts.File,
		}).Info("logger initialized")
	})
}
