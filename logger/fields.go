package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across dartgen.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	// Inputs
	FieldPackage = "package"
	FieldModel   = "model"
	FieldConfig  = "config"

	// Outputs
	FieldFile      = "file"
	FieldOutputDir = "output_dir"
	FieldType      = "type"
	FieldKind      = "kind"

	FieldCommand    = "command"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldError      = "error"
	FieldEvent      = "event"
)

type contextKey string

const (
	componentKey contextKey = "logger_component"
	fileKey      contextKey = "logger_file"
)

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// WithFile adds the file being generated to the context for logging
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey, file)
}

// FieldsFromContext extracts logging fields from context as key-value pairs
// suitable for Infow/Errorw.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}
	if file, ok := ctx.Value(fileKey).(string); ok && file != "" {
		fields = append(fields, FieldFile, file)
	}
	return fields
}

// LoggerFromContext returns a logger carrying the fields stored in ctx.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
//	type Generator struct {
//	    logger *zap.SugaredLogger
//	}
//
//	g := &Generator{logger: logger.ComponentLogger("typegen.dart")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
