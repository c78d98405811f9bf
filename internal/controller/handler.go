package controller

import (
	"encoding/json"
	"net/http"
	"sync"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/domain/repository"
	"base-wrapped-api/internal/domain/service"
	"base-wrapped-api/internal/infrastructure/logger"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// WrappedHandler serves the wrapped-stats HTTP API.
type WrappedHandler struct {
	wrapped    service.WrappedService
	reputation repository.ReputationRepository
	logger     *logger.Logger
}

// NewWrappedHandler creates the handler.
func NewWrappedHandler(wrapped service.WrappedService, reputation repository.ReputationRepository, log *logger.Logger) *WrappedHandler {
	return &WrappedHandler{
		wrapped:    wrapped,
		reputation: reputation,
		logger:     log.WithComponent("wrapped-handler"),
	}
}

type wrappedResponse struct {
	Success bool                 `json:"success"`
	Address string               `json:"address,omitempty"`
	Stats   *entity.WrappedStats `json:"stats,omitempty"`
	Message string               `json:"message,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// GetWrapped handles GET /api/wrapped?address=0x... It degrades upstream
// failures into zeroed stats; the only client errors are a missing or
// malformed address.
func (h *WrappedHandler) GetWrapped(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		writeJSON(w, http.StatusBadRequest, wrappedResponse{
			Success: false,
			Error:   "address query parameter is required",
		})
		return
	}
	if !common.IsHexAddress(address) {
		writeJSON(w, http.StatusBadRequest, wrappedResponse{
			Success: false,
			Error:   "invalid address format",
		})
		return
	}
	normalized := entity.NormalizeAddress(address)

	// Aggregation and reputation are independent upstreams; run both at
	// once and splice the reputation fields in afterwards.
	var (
		wg      sync.WaitGroup
		stats   *entity.WrappedStats
		statErr error
		builder *entity.BuilderData
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statErr = h.wrapped.ComputeWrappedStats(r.Context(), normalized)
	}()
	go func() {
		defer wg.Done()
		builder = h.reputation.FetchBuilderData(r.Context(), normalized)
	}()
	wg.Wait()

	if statErr != nil {
		h.logger.Warn("Failed to compute wrapped stats",
			zap.String("address", normalized),
			zap.Error(statErr))
		writeJSON(w, http.StatusBadRequest, wrappedResponse{
			Success: false,
			Error:   statErr.Error(),
		})
		return
	}

	mergeReputation(stats, builder)

	resp := wrappedResponse{
		Success: true,
		Address: normalized,
		Stats:   stats,
	}
	if stats.TotalTransactions == 0 {
		resp.Message = "No transactions found for this address on Base"
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetDemo handles GET /api/wrapped/demo.
func (h *WrappedHandler) GetDemo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wrappedResponse{
		Success: true,
		Stats:   h.wrapped.DemoStats(),
	})
}

// Health handles GET /health.
func (h *WrappedHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "base-wrapped-api",
	})
}

// mergeReputation splices the reputation fetcher's output into the stats
// record. Empty sub-results stay absent rather than null-padded.
func mergeReputation(stats *entity.WrappedStats, builder *entity.BuilderData) {
	if builder == nil {
		return
	}

	stats.BuilderScore = builder.Score
	if builder.Score != nil {
		breakdown := builder.Breakdown
		stats.BuilderScoreBreakdown = &breakdown
	}
	stats.TalentProfile = builder.Profile
	if builder.Socials != (entity.SocialHandles{}) {
		socials := builder.Socials
		stats.Socials = &socials
	}
	stats.Accounts = builder.Accounts
	stats.Projects = builder.Projects
	stats.TopCredentials = builder.TopCredentials
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
