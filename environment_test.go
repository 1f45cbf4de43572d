package quiz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/logger"
)

func TestEnvironmentValid(t *testing.T) {
	for _, e := range []quiz.Environment{quiz.Development, quiz.Production, quiz.Staging, quiz.Testing} {
		require.Nil(t, e.Valid())
	}

	require.ErrorIs(t, quiz.Environment("LOCAL").Valid(), quiz.ErrNotValid)
	require.ErrorIs(t, quiz.Environment("").Valid(), quiz.ErrNotValid)
}

func TestEnvVarOrEnv(t *testing.T) {
	// Arrange
	key := "QUIZ_TEST_ENVIRONMENT"

	// Act + Assert
	require.Equal(t, quiz.Development, quiz.EnvVarOrEnv(key, quiz.Development))

	// Arrange
	t.Setenv(key, "production")

	// Act + Assert
	require.Equal(t, quiz.Production, quiz.EnvVarOrEnv(key, quiz.Development))

	// Arrange
	t.Setenv(key, "nowhere")

	// Act + Assert
	require.Equal(t, quiz.Testing, quiz.EnvVarOrEnv(key, quiz.Testing))
}

func TestEnvVarOrDuration(t *testing.T) {
	key := "QUIZ_TEST_DURATION"
	require.Equal(t, time.Second, quiz.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "2m")
	require.Equal(t, 2*time.Minute, quiz.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "soon")
	require.Equal(t, time.Second, quiz.EnvVarOrDuration(key, time.Second))
}

func TestEnvVarOrLogLevel(t *testing.T) {
	key := "QUIZ_TEST_LOG_LEVEL"
	require.Equal(t, logger.LogLevelInfo, quiz.EnvVarOrLogLevel(key, logger.LogLevelInfo))

	t.Setenv(key, "debug")
	require.Equal(t, logger.LogLevelDebug, quiz.EnvVarOrLogLevel(key, logger.LogLevelInfo))

	t.Setenv(key, "LOUD")
	require.Equal(t, logger.LogLevelWarn, quiz.EnvVarOrLogLevel(key, logger.LogLevelWarn))
}

func TestEnvVarOrString(t *testing.T) {
	key := "QUIZ_TEST_STRING"
	require.Equal(t, "Quiz • ", quiz.EnvVarOrString(key, "Quiz • "))

	t.Setenv(key, "Prova • ")
	require.Equal(t, "Prova • ", quiz.EnvVarOrString(key, "Quiz • "))
}

func TestEnvVarOrInt(t *testing.T) {
	key := "QUIZ_TEST_INT"
	require.Equal(t, 3000, quiz.EnvVarOrInt(key, 3000))

	t.Setenv(key, "8080")
	require.Equal(t, 8080, quiz.EnvVarOrInt(key, 3000))

	t.Setenv(key, "eighty")
	require.Equal(t, 3000, quiz.EnvVarOrInt(key, 3000))
}

func TestEnvVarOrBool(t *testing.T) {
	key := "QUIZ_TEST_BOOL"
	require.True(t, quiz.EnvVarOrBool(key, true))

	t.Setenv(key, "FALSE")
	require.False(t, quiz.EnvVarOrBool(key, true))

	t.Setenv(key, "maybe")
	require.True(t, quiz.EnvVarOrBool(key, true))
}

func TestEnvVarOrURL(t *testing.T) {
	key := "QUIZ_TEST_URL"

	// Arrange + Act
	u := quiz.EnvVarOrURL(key, "http://localhost:3000/any")

	// Assert
	require.Equal(t, "http://localhost:3000/", u.String())

	// Arrange
	t.Setenv(key, "https://quiz.example.com")

	// Act
	u = quiz.EnvVarOrURL(key, "http://localhost:3000")

	// Assert
	require.Equal(t, "https://quiz.example.com", u.String())

	// Arrange + Act + Assert
	require.Nil(t, quiz.EnvVarOrURL(key, "not a url"))
}
