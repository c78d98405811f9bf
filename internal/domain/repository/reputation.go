package repository

import (
	"context"

	"base-wrapped-api/internal/domain/entity"
)

// ReputationRepository fetches builder/reputation data from the identity
// provider. Each sub-resource (score, credentials, profile, socials,
// accounts, projects) is independently best-effort; a missing API key
// degrades every field to nil/empty without error.
type ReputationRepository interface {
	FetchBuilderData(ctx context.Context, address string) *entity.BuilderData
}
