package registry

import (
	"context"
	"petregistry/pkg/logger"
	"petregistry/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const outcomeOK = "ok"

func (s *Service) observe(ctx context.Context, span trace.Span, operation string, err error, elapsed time.Duration) {
	kind := outcomeOK
	if err != nil {
		c := serrors.Classify(err)
		kind = c.Kind.Error()

		span.RecordError(err)
		span.SetStatus(codes.Error, c.Message)
		logger.Debug(ctx, "registry operation failed",
			zap.String("operation", operation),
			zap.String("kind", kind),
			zap.Error(err))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(attribute.String("registry.outcome", kind))

	s.recorder.Record(context.WithoutCancel(ctx), operation, kind, elapsed)
}
