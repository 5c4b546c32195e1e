package llm

import (
	"go.uber.org/zap"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	ContentType domain.ContentType
	Backend     Backend
	Model       string
	LatencyMs   int64
	Success     bool
	ErrorCode   string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ZapObserver logs call events through a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer backed by log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("content_type", string(event.ContentType)),
		zap.String("backend", string(event.Backend)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("llm call completed", fields...)
		return
	}
	o.log.Warn("llm call failed", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
