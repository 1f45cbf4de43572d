package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"debug", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}

	require.Equal(t, "[WARN]", logger.LogLevelWarn.String())
	require.Equal(t, "[UNK]", logger.LogLevel(99).String())
}

func TestStdLogger(t *testing.T) {
	color.NoColor = true

	tcs := []struct {
		name   string
		level  logger.LogLevel
		logFn  func(logger.Logger, string)
		prefix string
		emits  bool
	}{
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger, msg string) { l.Debug(msg, nil) }, "[DEBUG]", false},
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger, msg string) { l.Debug(msg, nil) }, "[DEBUG]", true},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger, msg string) { l.Info(msg, nil) }, "[INFO]", true},
		{"Info-At-Warn", logger.LogLevelWarn, func(l logger.Logger, msg string) { l.Info(msg, nil) }, "[INFO]", false},
		{"Warn-At-Warn", logger.LogLevelWarn, func(l logger.Logger, msg string) { l.Warn(msg, nil) }, "[WARN]", true},
		{"Error-At-Fatal", logger.LogLevelFatal, func(l logger.Logger, msg string) { l.Error(msg, nil) }, "[ERROR]", false},
		{"Error-At-Error", logger.LogLevelError, func(l logger.Logger, msg string) { l.Error(msg, nil) }, "[ERROR]", true},
		{"Fatal-At-Fatal", logger.LogLevelFatal, func(l logger.Logger, msg string) { l.Fatal(msg, nil) }, "[FATAL]", true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.logFn(l, "such fun!")

			// Assert
			if !tc.emits {
				require.Zero(t, b.Len())
				return
			}

			out := b.String()
			require.Equal(t, tc.prefix, logLevelRegexp.FindString(out))
			require.Regexp(t, fpRegexp, out)
			require.Equal(t, "such fun!", msgRegexp.FindStringSubmatch(out)[1])
		})
	}
}

func TestStdLoggerLogContext(t *testing.T) {
	color.NoColor = true

	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))
	ctx := &logger.LogContext{
		Caller: "quiz/route/resolver.go:1",
		Error:  errors.New("oops"),
	}

	// Act
	l.Info("loading", ctx)

	// Assert
	require.Equal(t, "[INFO] quiz/route/resolver.go:1 'loading' log_context: {\"error\":\"oops\"}\n", b.String())
}

func TestStdLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.New(logger.WithSkip(1))

	// Act
	sl := l.AddSkip(3)

	// Assert
	require.Equal(t, 1, l.Skip())
	require.Equal(t, 3, sl.Skip())
	require.Equal(t, l.LogLevel(), sl.LogLevel())
}
