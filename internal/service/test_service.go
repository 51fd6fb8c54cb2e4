package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "cityinfo/internal/service"

// TestService is the helper capability invoked by the test endpoint.
// Both operations are side-effect free and cannot fail.
type TestService interface {
	Test(ctx context.Context)
	SecondTest(ctx context.Context)
}

// testService is stateless; one value serves every request.
type testService struct {
	tracer trace.Tracer
	log    *zap.Logger
}

// NewTestService constructs the default TestService. A nil logger is replaced with a no-op one.
func NewTestService(log *zap.Logger) TestService {
	if log == nil {
		log = zap.NewNop()
	}
	return &testService{
		tracer: otel.Tracer(tracerName),
		log:    log.Named("test_service"),
	}
}

func (s *testService) Test(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "TestService.Test")
	defer span.End()
	s.log.Debug("test invoked")
}

func (s *testService) SecondTest(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "TestService.SecondTest")
	defer span.End()
	s.log.Debug("second test invoked")
}
