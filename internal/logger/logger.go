package logger

import (
	"context"
	"strings"

	"github.com/jeffleon2/draftea-webhook-pipeline/config"
	"github.com/sirupsen/logrus"
)

type fieldsKey struct{}

// Setup configures the standard logrus logger from LOG_LEVEL and LOG_FORMAT.
func Setup(cfg config.Log) {
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{logrus.FieldKeyTime: "timestamp"},
	})
}

// WithFields returns a context carrying fields for FromContext.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	merged := logrus.Fields{}
	if existing, ok := ctx.Value(fieldsKey{}).(logrus.Fields); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// FromContext returns an entry with the fields stored on ctx.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.WithContext(ctx)
	if fields, ok := ctx.Value(fieldsKey{}).(logrus.Fields); ok {
		entry = entry.WithFields(fields)
	}
	return entry
}
