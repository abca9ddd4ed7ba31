// internal/logging/context.go
package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/plannerpro/generator-service/internal/contextkeys"
)

// FieldsFromContext extrae los campos de logging (trace_id) del contexto y
// los devuelve como un slice de zap.Field listo para anexar a cualquier log.
func FieldsFromContext(ctx context.Context) []zap.Field {
	fields := []zap.Field{}
	if tid, ok := ctx.Value(contextkeys.TraceIDKey).(string); ok && tid != "" {
		fields = append(fields, zap.String("trace_id", tid))
	}
	return fields
}

// WithTraceID añade el trace_id al contexto si está presente.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID != "" {
		ctx = context.WithValue(ctx, contextkeys.TraceIDKey, traceID)
	}
	return ctx
}
