package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/cfgsplit/pkg/errors"
)

const (
	// AppDirName is the directory under the XDG state home holding the log file.
	AppDirName = "cfgsplit"
	// LogFileEnv overrides the log file location. LogFileOff disables it.
	LogFileEnv = "CFGSPLIT_LOG_FILE"
	LogFileOff = "off"
)

// levels is indexed by the -v count.
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

var (
	fileMu  sync.Mutex
	logFile *os.File
)

// Options configure Setup.
type Options struct {
	Verbosity int
	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer
	// LogFile overrides LogFilePath. LogFileOff disables file output.
	LogFile string
}

// LevelFor maps a -v count to a level. Counts past trace stay at trace.
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

// SetupLogger configures the global logger for a -v count, writing to
// stderr and the log file.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup replaces the global logger. A log file opened by a previous call is
// closed.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{consoleWriter(console)}

	path := opts.LogFile
	if path == "" {
		path = LogFilePath()
	}
	file, fileErr := swapLogFile(path)
	if file != nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a child of the global logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath returns $CFGSPLIT_LOG_FILE, or $XDG_STATE_HOME/cfgsplit/cfgsplit.log.
func LogFilePath() string {
	if p := os.Getenv(LogFileEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.StateHome, AppDirName, AppDirName+".log")
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(f.Fd()) {
		cw.NoColor = true
	}
	return cw
}

// swapLogFile closes the current log file and opens path in its place. A nil
// file with a nil error means file logging is off.
func swapLogFile(path string) (*os.File, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if path == LogFileOff {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to open log file")
	}
	logFile = f
	return f, nil
}

// LogCommand records a command invocation at debug level.
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to
// log its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
