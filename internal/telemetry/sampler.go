package telemetry

import (
	"fmt"
	"strings"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SyncSpanPrefix prefixes the names of spans started by the sync controller
const SyncSpanPrefix = "sync."

// syncSampler samples controller root spans at their own ratio and everything else at the
// base ratio. Child spans follow their parent.
type syncSampler struct {
	sync sdktrace.Sampler
	base sdktrace.Sampler
}

func newSampler(tc *TracingConfig) sdktrace.Sampler {
	return sdktrace.ParentBased(&syncSampler{
		sync: sdktrace.TraceIDRatioBased(tc.GetSyncSampling()),
		base: sdktrace.TraceIDRatioBased(tc.GetSampling()),
	})
}

func (s *syncSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	if strings.HasPrefix(p.Name, SyncSpanPrefix) {
		return s.sync.ShouldSample(p)
	}
	return s.base.ShouldSample(p)
}

func (s *syncSampler) Description() string {
	return fmt.Sprintf("SyncSampler{sync:%s,base:%s}", s.sync.Description(), s.base.Description())
}
