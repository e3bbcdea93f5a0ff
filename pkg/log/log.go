package log

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/osmkit/stringmatch/pkg/env"
)

// concurrency-safe counter used to dedupe repeated log lines
var ctr = newCounter()

var (
	lock   sync.Mutex
	logger = newStartupLogger()
)

// newStartupLogger creates the logger used before InitLogging runs, so that
// package-level logging works from init() contexts and in library use.
func newStartupLogger() *zerolog.Logger {
	l := zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()
	return &l
}

func consoleWriter(out *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    viper.GetBool("disable-log-color") || !isTerminal(out),
		TimeFormat: time.RFC3339,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLogger returns the global logger.
func GetLogger() *zerolog.Logger {
	lock.Lock()
	defer lock.Unlock()
	return logger
}

// SetLogger replaces the global logger. Passing nil resets to the startup
// logger.
func SetLogger(l *zerolog.Logger) {
	lock.Lock()
	defer lock.Unlock()
	if l == nil {
		l = newStartupLogger()
	}
	logger = l
}

// InitLogging configures the global logger from the viper-bound log-format and
// disable-log-color settings. It must run after flag parsing so command line
// values are visible. When setLevel is true the log-level setting (falling
// back to the STRINGMATCH_LOG_LEVEL environment variable) is applied as well.
func InitLogging(setLevel bool) {
	format := strings.ToLower(viper.GetString("log-format"))

	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		l = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()
	}
	SetLogger(&l)

	if setLevel {
		level := viper.GetString("log-level")
		if level == "" {
			level = env.GetLogLevel()
		}
		if err := SetLogLevel(level); err != nil {
			Warnf("Failed to set log level to '%s': %s", level, err)
		}
	}
}

// SetLogLevel parses the given level string and applies it globally. Accepted
// values are the zerolog level names: trace, debug, info, warn, error, fatal,
// panic, and disabled.
func SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// GetLogLevel returns the name of the current global log level.
func GetLogLevel() string {
	return zerolog.GlobalLevel().String()
}

func Errorf(format string, a ...interface{}) {
	GetLogger().Error().Msgf(format, a...)
}

func DedupedErrorf(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Errorf(format, a...)
	} else if timesLogged == logTypeLimit {
		Errorf(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}

	// TODO if timesLogged > logTypeLimit, log once every... 100 (?) times so we
	// don't lose track entirely?
}

func Warnf(format string, a ...interface{}) {
	GetLogger().Warn().Msgf(format, a...)
}

func DedupedWarningf(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Warnf(format, a...)
	} else if timesLogged == logTypeLimit {
		Warnf(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

func Infof(format string, a ...interface{}) {
	GetLogger().Info().Msgf(format, a...)
}

func DedupedInfof(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Infof(format, a...)
	} else if timesLogged == logTypeLimit {
		Infof(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

func Debugf(format string, a ...interface{}) {
	GetLogger().Debug().Msgf(format, a...)
}

func Tracef(format string, a ...interface{}) {
	GetLogger().Trace().Msgf(format, a...)
}

func Fatalf(format string, a ...interface{}) {
	GetLogger().Fatal().Msgf(format, a...)
}

// Profile logs the elapsed time since start against the given name.
func Profile(start time.Time, name string) {
	elapsed := time.Since(start)
	Debugf("%s: %s", elapsed, name)
}

// ProfileWithThreshold logs the elapsed time since start, but only if it
// exceeds the given threshold.
func ProfileWithThreshold(start time.Time, threshold time.Duration, name string) {
	elapsed := time.Since(start)
	if elapsed > threshold {
		Debugf("%s: %s", elapsed, name)
	}
}

type counter struct {
	mu   sync.RWMutex
	seen map[string]int
}

func newCounter() *counter {
	return &counter{seen: map[string]int{}}
}

func (ctr *counter) count(key string) int {
	ctr.mu.RLock()
	defer ctr.mu.RUnlock()
	return ctr.seen[key]
}

func (ctr *counter) delete(key string) {
	ctr.mu.Lock()
	delete(ctr.seen, key)
	ctr.mu.Unlock()
}

func (ctr *counter) increment(key string) int {
	ctr.mu.Lock()
	defer ctr.mu.Unlock()
	ctr.seen[key]++
	return ctr.seen[key]
}
