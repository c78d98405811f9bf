package enriched

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/domain/repository"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/logger"

	"go.uber.org/zap"
)

const topDappLimit = 5

// Client implements EnrichedActivityRepository against a Zerion-style
// wallet-transactions API. The feed attributes transactions to applications
// and carries USD values per transfer, which the raw explorer data lacks.
type Client struct {
	baseURL    string
	apiKey     string
	chainID    string
	pageSize   int
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates an enriched activity client from configuration.
func NewClient(cfg *config.Config, log *logger.Logger) repository.EnrichedActivityRepository {
	return &Client{
		baseURL:    cfg.Enriched.BaseURL,
		apiKey:     cfg.Enriched.APIKey,
		chainID:    cfg.Enriched.ChainID,
		pageSize:   cfg.Enriched.PageSize,
		httpClient: &http.Client{Timeout: cfg.Enriched.Timeout},
		logger:     log.WithComponent("enriched-client"),
	}
}

type operation struct {
	Attributes struct {
		OperationType string `json:"operation_type"`
		Hash          string `json:"hash"`
		MinedAt       string `json:"mined_at"`
		Transfers     []struct {
			FungibleInfo *struct {
				Name   string `json:"name"`
				Symbol string `json:"symbol"`
			} `json:"fungible_info"`
			Direction string   `json:"direction"`
			Value     *float64 `json:"value"`
		} `json:"transfers"`
		ApplicationMetadata *struct {
			Name string `json:"name"`
			Icon struct {
				URL string `json:"url"`
			} `json:"icon"`
		} `json:"application_metadata"`
	} `json:"attributes"`
}

type feedResponse struct {
	Data []operation `json:"data"`
}

// FetchActivity returns the provider-normalized activity summary. Missing
// credentials or any upstream failure yield an empty result.
func (c *Client) FetchActivity(ctx context.Context, address string) *entity.EnrichedActivity {
	if c.apiKey == "" {
		c.logger.Warn("Enriched provider API key missing, skipping rich data fetch")
		return &entity.EnrichedActivity{}
	}

	endpoint := fmt.Sprintf("%s/v1/wallets/%s/transactions/?currency=usd&filter[chain_ids]=%s&page[size]=%d",
		c.baseURL, address, c.chainID, c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("Failed to build enriched request", zap.Error(err))
		return &entity.EnrichedActivity{}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey+":")))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Enriched request failed", zap.Error(err))
		return &entity.EnrichedActivity{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Enriched provider returned non-OK status", zap.Int("status", resp.StatusCode))
		return &entity.EnrichedActivity{}
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		c.logger.Warn("Failed to decode enriched response", zap.Error(err))
		return &entity.EnrichedActivity{}
	}

	return buildActivity(feed.Data)
}

// buildActivity derives the dApp ranking, the highest-value trade and the
// running USD swap volume from the raw operation feed.
func buildActivity(ops []operation) *entity.EnrichedActivity {
	type dappEntry struct {
		name  string
		icon  string
		count int
	}
	dapps := make(map[string]*dappEntry)
	var order []string

	var highest entity.SwapHighlight
	totalVolumeUSD := 0.0

	for _, op := range ops {
		attr := op.Attributes

		if meta := attr.ApplicationMetadata; meta != nil && meta.Name != "" && meta.Name != "Unknown Application" {
			if existing, ok := dapps[meta.Name]; ok {
				existing.count++
			} else {
				dapps[meta.Name] = &dappEntry{name: meta.Name, icon: meta.Icon.URL, count: 1}
				order = append(order, meta.Name)
			}
		}

		if attr.OperationType != "trade" {
			continue
		}

		// A trade's size is the summed USD value of its transfers.
		swapValue := 0.0
		swapToken := ""
		for _, transfer := range attr.Transfers {
			if transfer.Value == nil {
				continue
			}
			swapValue += *transfer.Value
			totalVolumeUSD += *transfer.Value
			if transfer.FungibleInfo != nil {
				swapToken = transfer.FungibleInfo.Symbol
			}
		}

		if swapValue > highest.AmountUSD {
			highest = entity.SwapHighlight{
				AmountUSD:   swapValue,
				TokenSymbol: swapToken,
				Date:        attr.MinedAt,
			}
		}
	}

	ranked := make([]entity.DappInteraction, 0, len(order))
	for _, name := range order {
		entry := dapps[name]
		displayName := entry.name
		// Some feeds report a bare contract address as the application name;
		// resolve those through the known-dApp table.
		if len(displayName) > 2 && displayName[:2] == "0x" {
			if known, ok := entity.KnownDapps[entity.NormalizeAddress(displayName)]; ok {
				displayName = known
			}
		}
		ranked = append(ranked, entity.DappInteraction{
			Name:     displayName,
			Count:    entry.count,
			ImageURL: entry.icon,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topDappLimit {
		ranked = ranked[:topDappLimit]
	}

	activity := &entity.EnrichedActivity{
		TopDapps:           ranked,
		TotalSwapVolumeUSD: totalVolumeUSD,
	}
	if highest.AmountUSD > 0 {
		activity.HighestValueSwap = &highest
	}
	return activity
}
