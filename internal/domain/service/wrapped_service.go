package service

import (
	"context"

	"base-wrapped-api/internal/domain/entity"
)

// WrappedService computes the wrapped-stats aggregate for one address.
type WrappedService interface {
	// ComputeWrappedStats fans out to the upstream fetchers and derives the
	// full WrappedStats record, minus the reputation fields which the
	// caller splices in separately. The only error is an invalid address
	// format; upstream failures degrade to zeroed stats.
	ComputeWrappedStats(ctx context.Context, address string) (*entity.WrappedStats, error)

	// DemoStats returns a fixed WrappedStats instance without touching any
	// upstream fetcher.
	DemoStats() *entity.WrappedStats
}
