package repository

import (
	"context"

	"base-wrapped-api/internal/domain/entity"
)

// ChainActivityRepository fetches per-address activity from an
// Etherscan-compatible explorer API.
//
// Every list operation returns records already filtered to the configured
// wrapped-year window, falling back to the all-time set when the window is
// empty but the address has history. Implementations degrade to an empty
// slice on any upstream failure; callers cannot distinguish "no data" from
// "fetch failed", and must not need to.
type ChainActivityRepository interface {
	// ListTransactions returns normal transactions, newest first.
	ListTransactions(ctx context.Context, address string) []*entity.Transaction

	// ListInternalTransactions returns internal (trace) transactions.
	ListInternalTransactions(ctx context.Context, address string) []*entity.Transaction

	// ListTokenTransfers returns ERC-20 transfer events.
	ListTokenTransfers(ctx context.Context, address string) []*entity.TokenTransfer

	// ListNFTTransfers returns ERC-721 transfer events.
	ListNFTTransfers(ctx context.Context, address string) []*entity.NFTTransfer

	// ListMultiTokenTransfers returns ERC-1155 transfer events.
	ListMultiTokenTransfers(ctx context.Context, address string) []*entity.NFTTransfer

	// ListContractCreations returns contracts deployed by the address,
	// across all time.
	ListContractCreations(ctx context.Context, address string) []*entity.ContractCreation

	// GetFirstTransaction returns the oldest transaction ever, ignoring the
	// year window, or nil when the address has no history.
	GetFirstTransaction(ctx context.Context, address string) *entity.FirstTransaction
}
