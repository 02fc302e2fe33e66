package metrics

import (
	"regexp"
	"strconv"
	"time"
)

var (
	// Numeric path segment pattern for endpoint normalization
	idPattern = regexp.MustCompile(`/\d+`)
)

// RecordAPICall records one remote API call
func (m *Metrics) RecordAPICall(endpoint, method string, statusCode int, duration time.Duration, err error) {
	m.safeExecute("RecordAPICall", func() {
		endpoint = normalizeEndpoint(endpoint)
		status := strconv.Itoa(statusCode)

		m.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		m.APIRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())

		// Record errors for both network errors and HTTP error status codes
		if err != nil || statusCode >= 400 {
			errorType := getErrorType(statusCode, err)
			m.APIErrors.WithLabelValues(endpoint, errorType).Inc()
		}
	})
}

// normalizeEndpoint converts actual ids to templates
// Example: /api/boards/42/sections -> /api/boards/{id}/sections
func normalizeEndpoint(endpoint string) string {
	return idPattern.ReplaceAllString(endpoint, "/{id}")
}

// getErrorType categorizes error types based on status code and error
func getErrorType(statusCode int, err error) string {
	switch {
	case statusCode == 400:
		return "bad_request"
	case statusCode == 401:
		return "unauthorized"
	case statusCode == 403:
		return "forbidden"
	case statusCode == 404:
		return "not_found"
	case statusCode == 409:
		return "conflict"
	case statusCode == 422:
		return "unprocessable_entity"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode >= 500:
		return "server_error"
	case err != nil:
		return "network_error"
	default:
		return "unknown"
	}
}
