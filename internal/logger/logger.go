package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zerolog.Logger with a component tag.
type Logger struct {
	logger zerolog.Logger
	closer io.Closer
}

var (
	runID     = uuid.NewString()
	globalMu  sync.RWMutex
	globalLog = NewNop()
)

// RunID returns the id shared by every logger of this process.
func RunID() string {
	return runID
}

// New creates a logger from configuration. A non-empty File routes records to
// a rotating file; otherwise Output selects stderr or stdout.
func New(cfg Config) *Logger {
	cfg.ApplyDefaults()

	var out io.Writer
	var closer io.Closer
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out, closer = lj, lj
	} else {
		out = outputWriter(cfg.Output)
	}

	l := NewWithWriter(cfg, out)
	l.closer = closer
	return l
}

// NewWithWriter creates a logger writing to w, ignoring Output and File.
func NewWithWriter(cfg Config, w io.Writer) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	if strings.ToLower(cfg.Format) == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		}
	}

	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str(FieldRunID, runID).
		Logger()

	return &Logger{logger: zl}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{logger: l.logger.With().Fields(fields).Logger()}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Debug(), fields...).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Info(), fields...).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Warn(), fields...).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Error(), fields...).Msg(msg)
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) *zerolog.Event {
	for _, f := range fields {
		event = event.Fields(f)
	}
	return event
}

// --- Global logger ---

// Init replaces the global logger with one built from cfg and returns it.
func Init(cfg Config) *Logger {
	l := New(cfg)
	SetGlobalLogger(l)
	return l
}

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) {
	if l == nil {
		return
	}
	globalMu.Lock()
	globalLog = l
	globalMu.Unlock()
}

// Get returns the global logger. It discards records until Init is called.
func Get() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLog
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
