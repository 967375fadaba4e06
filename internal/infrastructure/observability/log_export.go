package observability

import (
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	otellog "go.opentelemetry.io/otel/log"
)

// ExportLogs mirrors every global zerolog event to the OTLP log pipeline
func ExportLogs(provider otellog.LoggerProvider) {
	zlog.Logger = zlog.Logger.Hook(otlpHook{logger: provider.Logger(instrumentationName)})
}

type otlpHook struct {
	logger otellog.Logger
}

func (h otlpHook) Run(e *zerolog.Event, level zerolog.Level, message string) {
	if level == zerolog.NoLevel || level == zerolog.Disabled {
		return
	}

	var record otellog.Record
	now := time.Now()
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(otelSeverity(level))
	record.SetSeverityText(level.String())
	record.SetBody(otellog.StringValue(message))

	h.logger.Emit(e.GetCtx(), record)
}

func otelSeverity(level zerolog.Level) otellog.Severity {
	switch level {
	case zerolog.TraceLevel:
		return otellog.SeverityTrace
	case zerolog.DebugLevel:
		return otellog.SeverityDebug
	case zerolog.InfoLevel:
		return otellog.SeverityInfo
	case zerolog.WarnLevel:
		return otellog.SeverityWarn
	case zerolog.ErrorLevel:
		return otellog.SeverityError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityUndefined
	}
}
