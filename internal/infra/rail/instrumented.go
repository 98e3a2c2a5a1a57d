package rail

import (
	"context"
	"time"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/infra/metrics"
	"amhara-checkout/internal/usecase/checkout"
)

const (
	opInitialize = "initialize"
	opVerify     = "verify"
)

// Instrumented records call counts and latency for a rail adapter.
type Instrumented struct {
	next checkout.RailAdapter
}

var _ checkout.RailAdapter = Instrumented{}

func Instrument(next checkout.RailAdapter) checkout.RailAdapter {
	return Instrumented{next: next}
}

func (i Instrumented) Rail() payment.Rail {
	return i.next.Rail()
}

func (i Instrumented) Initialize(ctx context.Context, req checkout.InitRequest) (*checkout.InitResult, error) {
	start := time.Now()
	res, err := i.next.Initialize(ctx, req)
	result := resultLabel(err)
	if err == nil && res != nil && res.Capture != nil {
		result = string(res.Capture.Status)
	}
	i.observe(opInitialize, result, start)
	return res, err
}

func (i Instrumented) Verify(ctx context.Context, ref payment.Reference) (payment.VerificationResult, error) {
	start := time.Now()
	res, err := i.next.Verify(ctx, ref)
	result := resultLabel(err)
	if err == nil {
		result = string(res.Status)
	}
	i.observe(opVerify, result, start)
	return res, err
}

func (i Instrumented) observe(op, result string, start time.Time) {
	rail := i.next.Rail().String()
	metrics.RailRequests.WithLabelValues(rail, op, result).Inc()
	metrics.RailRequestDuration.WithLabelValues(rail, op).Observe(time.Since(start).Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case infra.IsKind(err, infra.KindDeclined):
		return "declined"
	case infra.IsKind(err, infra.KindMalformed):
		return "malformed"
	default:
		return "unavailable"
	}
}
