package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/quiz/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"route": "quiz"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"route":"quiz"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test"), Caller: "ignored.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/quiz/iq",
			"header": map[string]any{
				"Accept":        []any{"text/html"},
				"Authorization": []any{logger.RedactedVal},
				"Cookie":        []any{logger.RedactedVal},
			},
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com/quiz/iq", nil)
	r.Header.Set("Accept", "text/html")
	r.Header.Set("Authorization", "Bearer secret")
	r.Header.Add("Cookie", "session=secret")
	r.Header.Add("Cookie", "other=secret")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.NotContains(t, string(b), "secret")
	require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
}

func TestLogContextString(t *testing.T) {
	// Arrange
	lc := logger.LogContext{Data: map[string]any{"fn": func() {}}}

	// Act
	s := lc.String()

	// Assert
	require.Contains(t, s, "unsupported type")
}

func TestCurrentCaller(t *testing.T) {
	var caller string
	func() {
		caller = logger.CurrentCaller()
	}()

	require.Regexp(t, `logger/context_test\.go:\d+$`, caller)
}
