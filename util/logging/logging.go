// Package logging configures the zerolog global logger of the command
// line tools.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration of the zerolog logger and writers
type Config struct {
	// Level is the minimum level of the logged messages. Defaults to info.
	Level string

	// Enable console logging
	WithConsoleLog bool

	// Enable console logging coloring
	WithColor bool

	// EncodeLogsAsJSON makes the console writer log JSON
	EncodeLogsAsJSON bool

	// WithLogFile makes the framework log to a rolling file.
	// The fields below can be skipped if this value is false.
	WithLogFile bool

	// Directory to log to to when filelogging is enabled
	Directory string

	// Filename is the name of the logfile which will be placed inside the directory
	Filename string

	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int

	// MaxBackups the max number of rolled files to keep
	MaxBackups int

	// MaxAge the max age in days to keep a logfile
	MaxAge int
}

const (
	TimeFormat = "15:04:05.000"
)

var (
	consoleOut io.Writer = os.Stderr
)

// SetConsoleOutput changes the writer of the console logs.
func SetConsoleOutput(w io.Writer) {
	consoleOut = w
}

// Configure sets up the global logger and returns it.
func Configure(config Config) (zerolog.Logger, error) {
	var writers []io.Writer

	level := zerolog.InfoLevel
	if config.Level != "" {
		l, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return log.Logger, errors.Wrapf(err, "log level %s", config.Level)
		}
		level = l
	}
	if config.WithConsoleLog {
		if config.EncodeLogsAsJSON {
			writers = append(writers, consoleOut)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        consoleOut,
				NoColor:    !config.WithColor,
				TimeFormat: TimeFormat,
			})
		}
	}
	if config.WithLogFile {
		fileWriter, err := newRollingFile(config)
		if err != nil {
			return log.Logger, err
		}
		writers = append(writers, fileWriter)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger, nil
}

func newRollingFile(config Config) (io.Writer, error) {
	if err := os.MkdirAll(config.Directory, 0744); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", config.Directory)
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, config.Filename),
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}, nil
}
