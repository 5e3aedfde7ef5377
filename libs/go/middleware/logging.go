package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// Headers that never reach the logs
var sensitiveHeaders = map[string]bool{
	"Authorization":    true,
	"X-Api-Key":        true,
	"Cookie":           true,
	"Stripe-Signature": true,
}

// Customer details are masked in logged request and response bodies
var sensitiveFields = map[string]bool{
	"email":           true,
	"phone":           true,
	"line1":           true,
	"line2":           true,
	"recipient_email": true,
	"client_secret":   true,
	"account_number":  true,
	"iban":            true,
}

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies in development mode.
// Payment webhooks are logged without their body.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.FromContext(c.Request.Context()).With(zap.String("session_id", c.GetHeader(SessionIDHeader)))
		skipBody := strings.Contains(c.Request.URL.Path, "/webhooks/")

		var requestBody []byte
		if c.Request.Body != nil && !skipBody {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", redactHeaders(c.Request.Header)),
			zap.Any("body", redactJSON(requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		var responseJSON any
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			responseJSON = redactJSON(blw.body.Bytes())
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("body", responseJSON),
			zap.Int("body_size", blw.body.Len()),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware provides basic request logging for production
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		log := logger.FromContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("Request completed", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

func redactHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key, values := range header {
		if sensitiveHeaders[key] {
			headers[key] = redacted
			continue
		}
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	return headers
}

// redactJSON decodes body and masks sensitive fields at any depth. Non JSON bodies
// are summarized by size only.
func redactJSON(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}
	return redactValue(decoded)
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key, inner := range val {
			if sensitiveFields[strings.ToLower(key)] {
				val[key] = redacted
				continue
			}
			val[key] = redactValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = redactValue(inner)
		}
		return val
	default:
		return v
	}
}
