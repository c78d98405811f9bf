package repository

import (
	"context"

	"base-wrapped-api/internal/domain/entity"
)

// EnrichedActivityRepository fetches the provider-normalized transaction
// feed with dApp attribution and USD-valued transfers. Best-effort: missing
// credentials or upstream failure yield an empty result, never an error.
type EnrichedActivityRepository interface {
	FetchActivity(ctx context.Context, address string) *entity.EnrichedActivity
}
