/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package report implements the diagnostic dispatcher that sits between
// the format validators and a host-supplied sink: it resolves effective
// severity through policy, formats the message, invokes the sink, and
// records a Prometheus observation of every diagnostic considered.
package report

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel is the minimum severity a Logger will emit.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat selects the Logger's wire format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	Level  LogLevel
	Format LogFormat
	Output io.Writer
}

// Logger is the structured logger backing DefaultSink. Each diagnostic is
// logged as an event at Error or Warn level carrying object and kind
// fields and the message, rather than a single formatted line. DefaultSink
// leaves the kind field empty: a sink receives only the formatted message,
// whose "<symbolic>:" prefix names the kind.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger builds a Logger from cfg, defaulting to stdout/JSON/info when
// fields are left zero.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == LogFormatText {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()
	switch cfg.Level {
	case LogLevelDebug:
		zlog = zlog.Level(zerolog.DebugLevel)
	case LogLevelWarn:
		zlog = zlog.Level(zerolog.WarnLevel)
	case LogLevelError:
		zlog = zlog.Level(zerolog.ErrorLevel)
	default:
		zlog = zlog.Level(zerolog.InfoLevel)
	}

	return &Logger{logger: zlog}
}

// logDiagnostic emits one structured event for a resolved diagnostic.
// atError selects the zerolog level: Error-level for collapsed Error,
// Warn-level for collapsed Warn.
func (l *Logger) logDiagnostic(objectID, kind, message string, atError bool) {
	var event *zerolog.Event
	if atError {
		event = l.logger.Error()
	} else {
		event = l.logger.Warn()
	}
	event.Str("object", objectID).Str("kind", kind).Msg(message)
}
