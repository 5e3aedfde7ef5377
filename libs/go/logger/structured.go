package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI          LogComponent = "api"
	ComponentDB           LogComponent = "database"
	ComponentAuth         LogComponent = "auth"
	ComponentCheckout     LogComponent = "checkout"
	ComponentOrders       LogComponent = "orders"
	ComponentPayment      LogComponent = "payment"
	ComponentGifts        LogComponent = "gifts"
	ComponentSessions     LogComponent = "sessions"
	ComponentNotification LogComponent = "notification"
	ComponentMiddleware   LogComponent = "middleware"
	ComponentServer       LogComponent = "server"
	ComponentWorker       LogComponent = "worker"
)

// LogContext holds structured context information for logs
type LogContext struct {
	CorrelationID string
	OrderID       string
	SessionID     string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger carries a component and a growing set of context fields.
// Every With* call returns a copy; the receiver is never mutated.
type StructuredLogger struct {
	logger  *zap.Logger
	context LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return NewStructuredLoggerWith(Log, component)
}

// NewStructuredLoggerWith creates a structured logger backed by the given zap logger
func NewStructuredLoggerWith(base *zap.Logger, component LogComponent) *StructuredLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &StructuredLogger{
		logger:  base,
		context: LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	next := sl.clone()
	next.context.Fields[key] = value
	return next
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	next := sl.clone()
	next.context.CorrelationID = correlationID
	return next
}

// WithOrderID adds the order being worked on
func (sl *StructuredLogger) WithOrderID(orderID string) *StructuredLogger {
	next := sl.clone()
	next.context.OrderID = orderID
	return next
}

// WithSessionID adds the storefront session
func (sl *StructuredLogger) WithSessionID(sessionID string) *StructuredLogger {
	next := sl.clone()
	next.context.SessionID = sessionID
	return next
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	next := sl.clone()
	next.context.Operation = operation
	return next
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	next := sl.clone()
	next.context.Duration = duration
	return next
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	fields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		fields[k] = v
	}
	ctx := sl.context
	ctx.Fields = fields
	return &StructuredLogger{logger: sl.logger, context: ctx}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(sl.context.Fields)+6)

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.OrderID != "" {
		fields = append(fields, zap.String("order_id", sl.context.OrderID))
	}
	if sl.context.SessionID != "" {
		fields = append(fields, zap.String("session_id", sl.context.SessionID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}
	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation logs the start and end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)
	opLogger.Debug("Operation started")

	err := fn()

	done := opLogger.WithDuration(time.Since(start))
	if err != nil {
		done.Error("Operation failed", err)
	} else {
		done.Info("Operation completed")
	}
	return err
}

// LogOrderEvent logs an order lifecycle event
func (sl *StructuredLogger) LogOrderEvent(orderNumber, status, event string) {
	sl.WithField("order_number", orderNumber).
		WithField("order_status", status).
		WithField("event", event).
		Info("Order event occurred")
}

// LogPaymentEvent logs payment-related events
func (sl *StructuredLogger) LogPaymentEvent(paymentRef, method, status string, amountMinor int64, currency string) {
	sl.WithField("payment_ref", paymentRef).
		WithField("payment_method", method).
		WithField("payment_status", status).
		WithField("amount_minor", amountMinor).
		WithField("currency", currency).
		Info("Payment event occurred")
}
