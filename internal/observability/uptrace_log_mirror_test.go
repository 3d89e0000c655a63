package observability

import (
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []zap.Field{zap.String("path", "/healthz")}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", []zap.Field{zap.String("path", "/v1/teams")}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("account introspect request", []zap.Field{zap.String("path", "/healthz")}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]zap.Field{
		zap.String("team_id", "team-1"),
		zap.Int("attempt", 2),
	})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "attempt" || attrs[0].Value.AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "team_id" || attrs[1].Value.AsString() != "team-1" {
		t.Fatalf("unexpected team_id attribute: %+v", attrs[1])
	}
}

func TestToOTelLogValue(t *testing.T) {
	if v := toOTelLogValue("2024-03"); v.AsString() != "2024-03" {
		t.Fatalf("unexpected string value: %s", v)
	}
	if v := toOTelLogValue(int64(42)); v.AsInt64() != 42 {
		t.Fatalf("unexpected int value: %s", v)
	}
	if v := toOTelLogValue(true); !v.AsBool() {
		t.Fatalf("unexpected bool value: %s", v)
	}
	if v := toOTelLogValue(150 * time.Millisecond); v.AsString() != "150ms" {
		t.Fatalf("unexpected duration value: %s", v)
	}
	if v := toOTelLogValue(nil); v.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil, got %s", v.Kind())
	}
}

func TestToOTelSeverity(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  otellog.Severity
	}{
		{zapcore.DebugLevel, otellog.SeverityDebug},
		{zapcore.InfoLevel, otellog.SeverityInfo},
		{zapcore.WarnLevel, otellog.SeverityWarn},
		{zapcore.ErrorLevel, otellog.SeverityError},
		{zapcore.PanicLevel, otellog.SeverityFatal},
	}

	for _, tt := range tests {
		if got := toOTelSeverity(tt.level); got != tt.want {
			t.Fatalf("toOTelSeverity(%s)=%v want=%v", tt.level, got, tt.want)
		}
	}
}
