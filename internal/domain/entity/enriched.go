package entity

// EnrichedActivity is the best-effort output of the enriched activity
// fetcher. A zero value means the provider had nothing (or the fetch
// degraded); the aggregator falls back to raw recipient counting.
type EnrichedActivity struct {
	TopDapps           []DappInteraction `json:"topDapps,omitempty"`
	HighestValueSwap   *SwapHighlight    `json:"highestValueSwap,omitempty"`
	TotalSwapVolumeUSD float64           `json:"totalSwapVolumeUSD,omitempty"`
}
