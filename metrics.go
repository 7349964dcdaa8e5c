package validkit

import "log/slog"

// Reporter receives per-field validation counts. Calls are fire-and-forget:
// the engine never inspects an outcome of a report and a slow or failing
// reporter must not change validation results.
type Reporter interface {
	// ReportValid counts a field that passed validation.
	ReportValid(recordType, fieldPath, checkType string)

	// ReportInvalid counts a field that failed validation.
	ReportInvalid(recordType, fieldPath, checkType string)
}

// NoopReporter discards all reports. A nil Reporter passed to the engine
// behaves the same way.
type NoopReporter struct{}

func (NoopReporter) ReportValid(_, _, _ string) {}

func (NoopReporter) ReportInvalid(_, _, _ string) {}

// LogReporter logs every report at debug level. Intended for development and
// tests rather than as a metrics backend. The zero value uses slog.Default.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r LogReporter) ReportValid(recordType, fieldPath, checkType string) {
	r.logger().Debug("field valid",
		slog.String("record", recordType),
		slog.String("field", fieldPath),
		slog.String("check", checkType))
}

func (r LogReporter) ReportInvalid(recordType, fieldPath, checkType string) {
	r.logger().Debug("field invalid",
		slog.String("record", recordType),
		slog.String("field", fieldPath),
		slog.String("check", checkType))
}
