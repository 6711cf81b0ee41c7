package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldLeague     = "league"
	FieldSource     = "source"
	FieldURL        = "url"
	FieldSelector   = "selector"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldRow        = "row"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldClientIP   = "client_ip"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
