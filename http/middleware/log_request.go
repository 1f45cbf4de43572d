package middleware

import (
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/quiz"
	"github.com/xy-planning-network/quiz/logger"
)

// LogMaskVal replaces sensitive query values in logs.
const LogMaskVal = "xxxxxx"

// maskedParams are the query params whose values LogRequest hides.
var maskedParams = []string{"password", "token"}

// LogRequest logs the request's method, requested URL, response status and size
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
// - token
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			uri := r.URL.Path
			q := r.URL.Query()
			for _, key := range maskedParams {
				if q.Has(key) {
					q.Set(key, LogMaskVal)
				}
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			data := map[string]any{
				"bytes":       m.Written,
				"duration_ms": m.Duration.Milliseconds(),
				"method":      r.Method,
				"status":      m.Code,
				"uri":         uri,
			}

			if id, ok := r.Context().Value(quiz.RequestIDKey).(string); ok {
				data["id"] = id
			}

			if ip, ok := r.Context().Value(quiz.IpAddrKey).(string); ok {
				data["ip"] = ip
			}

			ls.Info(fmt.Sprintf("%s %s %d", r.Method, uri, m.Code), &logger.LogContext{Data: data})
		})
	}
}
