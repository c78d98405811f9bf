package explorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/domain/repository"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// Client implements ChainActivityRepository against an Etherscan-compatible
// explorer API. Every operation degrades to an empty result on upstream
// failure; the error never crosses this boundary.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	windowStart    int64
	windowEnd      int64
	txOffset       int
	transferOffset int
	logger         *logger.Logger
}

// NewClient creates an explorer client from configuration.
func NewClient(cfg *config.Config, log *logger.Logger) repository.ChainActivityRepository {
	start, end := cfg.Wrapped.Window()
	return &Client{
		baseURL:        cfg.Explorer.BaseURL,
		apiKey:         cfg.Explorer.APIKey,
		httpClient:     &http.Client{Timeout: cfg.Explorer.Timeout},
		windowStart:    start,
		windowEnd:      end,
		txOffset:       cfg.Explorer.TxOffset,
		transferOffset: cfg.Explorer.TransferOffset,
		logger:         log.WithComponent("explorer-client"),
	}
}

// apiEnvelope is the Etherscan response wrapper. Status "1" carries a result
// array; status "0" with message "No transactions found" is a normal empty
// result, anything else is an upstream error.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (c *Client) accountParams(action, address string, offset int, sort string) url.Values {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", action)
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("page", "1")
	params.Set("offset", strconv.Itoa(offset))
	params.Set("sort", sort)
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}
	return params
}

// fetchList calls the explorer and decodes the result array. Any failure
// (transport, status, malformed payload) logs a warning and returns nil.
func fetchList[T any](ctx context.Context, c *Client, params url.Values) []T {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Warn("Failed to build explorer request", zap.Error(err))
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Explorer request failed",
			zap.String("action", params.Get("action")),
			zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Warn("Failed to decode explorer response",
			zap.String("action", params.Get("action")),
			zap.Error(err))
		return nil
	}

	if envelope.Status != "1" {
		if envelope.Message != "No transactions found" {
			c.logger.Warn("Explorer returned error status",
				zap.String("action", params.Get("action")),
				zap.String("message", envelope.Message))
		}
		return nil
	}

	var result []T
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		c.logger.Warn("Failed to unmarshal explorer result",
			zap.String("action", params.Get("action")),
			zap.Error(err))
		return nil
	}
	return result
}

// preferWindow filters records to the wrapped-year window. When the window
// is empty but the all-time set is not, the all-time set is returned so that
// addresses inactive this year still get a meaningful summary.
func preferWindow[T any](all []T, unix func(T) int64, start, end int64) []T {
	var windowed []T
	for _, item := range all {
		if ts := unix(item); ts >= start && ts <= end {
			windowed = append(windowed, item)
		}
	}
	if len(windowed) == 0 && len(all) > 0 {
		return all
	}
	return windowed
}

// ListTransactions returns normal transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, address string) []*entity.Transaction {
	all := fetchList[*entity.Transaction](ctx, c, c.accountParams("txlist", address, c.txOffset, "desc"))
	return preferWindow(all, (*entity.Transaction).Unix, c.windowStart, c.windowEnd)
}

// ListInternalTransactions returns internal (trace) transactions.
func (c *Client) ListInternalTransactions(ctx context.Context, address string) []*entity.Transaction {
	all := fetchList[*entity.Transaction](ctx, c, c.accountParams("txlistinternal", address, c.transferOffset, "desc"))
	return preferWindow(all, (*entity.Transaction).Unix, c.windowStart, c.windowEnd)
}

// ListTokenTransfers returns ERC-20 transfer events.
func (c *Client) ListTokenTransfers(ctx context.Context, address string) []*entity.TokenTransfer {
	all := fetchList[*entity.TokenTransfer](ctx, c, c.accountParams("tokentx", address, c.transferOffset, "desc"))
	return preferWindow(all, (*entity.TokenTransfer).Unix, c.windowStart, c.windowEnd)
}

// ListNFTTransfers returns ERC-721 transfer events.
func (c *Client) ListNFTTransfers(ctx context.Context, address string) []*entity.NFTTransfer {
	all := fetchList[*entity.NFTTransfer](ctx, c, c.accountParams("tokennfttx", address, c.transferOffset, "desc"))
	return preferWindow(all, (*entity.NFTTransfer).Unix, c.windowStart, c.windowEnd)
}

// ListMultiTokenTransfers returns ERC-1155 transfer events.
func (c *Client) ListMultiTokenTransfers(ctx context.Context, address string) []*entity.NFTTransfer {
	all := fetchList[*entity.NFTTransfer](ctx, c, c.accountParams("token1155tx", address, c.transferOffset, "desc"))
	return preferWindow(all, (*entity.NFTTransfer).Unix, c.windowStart, c.windowEnd)
}

// ListContractCreations returns contracts deployed by the address across all
// time. Creation transactions have an empty recipient and a non-empty
// created-contract address.
func (c *Client) ListContractCreations(ctx context.Context, address string) []*entity.ContractCreation {
	all := fetchList[*entity.Transaction](ctx, c, c.accountParams("txlist", address, c.txOffset, "desc"))

	normalized := entity.NormalizeAddress(address)
	var creations []*entity.ContractCreation
	for _, tx := range all {
		if entity.NormalizeAddress(tx.From) != normalized {
			continue
		}
		if tx.To != "" || tx.ContractAddress == "" {
			continue
		}
		creations = append(creations, &entity.ContractCreation{
			Address:   tx.ContractAddress,
			Hash:      tx.Hash,
			Timestamp: tx.Unix(),
		})
	}
	return creations
}

// GetFirstTransaction returns the oldest transaction ever for the address,
// or nil when it has no history.
func (c *Client) GetFirstTransaction(ctx context.Context, address string) *entity.FirstTransaction {
	txs := fetchList[*entity.Transaction](ctx, c, c.accountParams("txlist", address, c.txOffset, "asc"))
	if len(txs) == 0 {
		return nil
	}

	first := txs[0]
	ts := first.Unix()
	return &entity.FirstTransaction{
		Date:      time.Unix(ts, 0).UTC().Format("January 2, 2006"),
		Timestamp: ts,
		Hash:      first.Hash,
	}
}
