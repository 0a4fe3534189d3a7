package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus logger to Logger. Key/value pairs become
// logrus fields; a trailing key without value is logged under "extra".
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps log. A nil logger gets a fresh logrus.New().
func NewLogrusLogger(log *logrus.Logger) *LogrusLogger {
	if log == nil {
		log = logrus.New()
	}
	return &LogrusLogger{entry: logrus.NewEntry(log)}
}

// With returns a logger that adds kv to every line.
func (l *LogrusLogger) With(kv ...any) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithFields(fields(kv))}
}

func (l *LogrusLogger) Debug(msg string, kv ...any) { l.entry.WithFields(fields(kv)).Debug(msg) }
func (l *LogrusLogger) Info(msg string, kv ...any)  { l.entry.WithFields(fields(kv)).Info(msg) }
func (l *LogrusLogger) Warn(msg string, kv ...any)  { l.entry.WithFields(fields(kv)).Warn(msg) }
func (l *LogrusLogger) Error(msg string, kv ...any) { l.entry.WithFields(fields(kv)).Error(msg) }

func fields(kv []any) logrus.Fields {
	out := make(logrus.Fields, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			out["extra"] = kv[i]
			break
		}
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		out[key] = kv[i+1]
	}
	return out
}

// ParseLogLevel maps a level name onto logrus levels, defaulting to info.
func ParseLogLevel(name string) logrus.Level {
	if name == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
