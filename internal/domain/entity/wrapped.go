package entity

// DappInteraction is one ranked entry in the top-dApps list. Address may be
// empty when the entry comes from the enriched feed, which keys dApps by
// application name rather than contract address.
type DappInteraction struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Count    int    `json:"count"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CollectionStat is one ranked NFT collection or fungible token entry.
type CollectionStat struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// FirstTxSummary describes the oldest in-window transaction.
type FirstTxSummary struct {
	Hash  string `json:"hash"`
	Date  string `json:"date"`
	Type  string `json:"type"` // "contract_call" or "transfer"
	Value string `json:"value"`
}

// PeakDay is the calendar date with the most transactions.
type PeakDay struct {
	Date        string `json:"date"`
	TxCount     int    `json:"txCount"`
	Description string `json:"description"`
}

// MonthlyActivity is one entry of the calendar-ordered monthly breakdown.
type MonthlyActivity struct {
	Month   string `json:"month"`
	TxCount int    `json:"txCount"`
	TopDapp string `json:"topDapp,omitempty"`
}

// AppJoinDate marks when the address received the companion-app membership
// NFT.
type AppJoinDate struct {
	Date           string `json:"date"`
	TokenID        string `json:"tokenId,omitempty"`
	IsEarlyAdopter bool   `json:"isEarlyAdopter"`
}

// OriginStory summarizes the address's first-ever on-chain activity.
type OriginStory struct {
	FirstEverTxDate  string `json:"firstEverTxDate"`
	FirstEverTxHash  string `json:"firstEverTxHash"`
	DaysOnChain      int    `json:"daysOnChain"`
	JoinedBefore2024 bool   `json:"joinedBefore2024"`
}

// Streaks holds consecutive-day activity runs. CurrentStreak is a windowed
// approximation: only the most recent 30 distinct active dates are walked,
// so runs longer than 30 days report as 30.
type Streaks struct {
	LongestStreak      int `json:"longestStreak"`
	CurrentStreak      int `json:"currentStreak"`
	ActiveDays         int `json:"activeDays"`
	ActiveDaysThisYear int `json:"activeDaysThisYear"`
}

// Percentile is a heuristic 0-100 engagement score per dimension, from fixed
// thresholds rather than real population data.
type Percentile struct {
	Transactions int `json:"transactions"`
	GasSpent     int `json:"gasSpent"`
	Contracts    int `json:"contracts"`
	Overall      int `json:"overall"`
}

// DeployedContract is one contract-creation fact rendered for display.
type DeployedContract struct {
	Address string `json:"address"`
	Hash    string `json:"hash"`
	Date    string `json:"date"`
}

// BuilderStatus reports whether the address deployed any contracts.
type BuilderStatus struct {
	IsBuilder         bool               `json:"isBuilder"`
	ContractsDeployed int                `json:"contractsDeployed"`
	DeployedContracts []DeployedContract `json:"deployedContracts"`
}

// SwapHighlight is the single highest USD-valued trade from the enriched
// feed.
type SwapHighlight struct {
	AmountUSD   float64 `json:"amountUSD"`
	TokenSymbol string  `json:"tokenSymbol"`
	Date        string  `json:"date"`
}

// LargestTx is the transaction with the maximum wei value.
type LargestTx struct {
	Hash  string `json:"hash"`
	Value string `json:"value"`
	Date  string `json:"date"`
}

// VolumeStats groups value-movement highlights.
type VolumeStats struct {
	LargestSingleTx    LargestTx      `json:"largestSingleTx"`
	HighestValueSwap   *SwapHighlight `json:"highestValueSwap,omitempty"`
	TotalSwapVolumeUSD float64        `json:"totalSwapVolumeUSD,omitempty"`
}

// WrappedStats is the aggregate output for one address, built fresh per
// request and never persisted. The reputation fields (builder score,
// breakdown, profile, socials, accounts, projects, credentials) are spliced
// in by the caller after aggregation; the structure is complete and
// displayable with all of them absent.
type WrappedStats struct {
	// Basic counts
	TotalTransactions      int `json:"totalTransactions"`
	SuccessfulTransactions int `json:"successfulTransactions"`
	FailedTransactions     int `json:"failedTransactions"`

	// Gas
	TotalGasSpentWei string `json:"totalGasSpentWei"`
	TotalGasSpentEth string `json:"totalGasSpentEth"`
	AvgGasPerTx      string `json:"avgGasPerTx"`

	// Volume
	TotalValueSentWei     string `json:"totalValueSentWei"`
	TotalValueSentEth     string `json:"totalValueSentEth"`
	TotalValueReceivedWei string `json:"totalValueReceivedWei"`
	TotalValueReceivedEth string `json:"totalValueReceivedEth"`

	// dApp interactions
	TopDapps                  []DappInteraction `json:"topDapps"`
	UniqueContractsInteracted int               `json:"uniqueContractsInteracted"`

	// NFTs
	NFTsMinted           int              `json:"nftsMinted"`
	NFTsReceived         int              `json:"nftsReceived"`
	NFTsSent             int              `json:"nftsSent"`
	UniqueNFTCollections int              `json:"uniqueNFTCollections"`
	TopNFTCollections    []CollectionStat `json:"topNFTCollections"`

	// Tokens
	UniqueTokensTraded int              `json:"uniqueTokensTraded"`
	TopTokens          []CollectionStat `json:"topTokens"`

	// Time-based
	MostActiveMonth string `json:"mostActiveMonth"`
	MostActiveDay   string `json:"mostActiveDay"`
	FirstTxDate     string `json:"firstTxDate"`
	LastTxDate      string `json:"lastTxDate"`

	// Fun facts
	BusyDaysCount int `json:"busyDaysCount"` // days with 5+ txs
	EarlyBirdTxs  int `json:"earlyBirdTxs"`  // before 06:00 UTC
	NightOwlTxs   int `json:"nightOwlTxs"`   // 22:00 UTC onward

	// Derived structures; nil when preconditions are unmet, which callers
	// must read as "insufficient data", not zero.
	Personality      *Personality      `json:"personality,omitempty"`
	Milestones       []Milestone       `json:"milestones,omitempty"`
	FirstTransaction *FirstTxSummary   `json:"firstTransaction,omitempty"`
	PeakDay          *PeakDay          `json:"peakDay,omitempty"`
	MonthlyBreakdown []MonthlyActivity `json:"monthlyBreakdown,omitempty"`
	AppJoinDate      *AppJoinDate      `json:"appJoinDate,omitempty"`
	OriginStory      *OriginStory      `json:"originStory,omitempty"`
	Streaks          *Streaks          `json:"streaks,omitempty"`
	Percentile       *Percentile       `json:"percentile,omitempty"`
	Builder          *BuilderStatus    `json:"builder,omitempty"`
	Volume           *VolumeStats      `json:"volume,omitempty"`

	// Reputation fields, merged by the caller from the reputation fetcher.
	BuilderScore          *int            `json:"builderScore,omitempty"`
	BuilderScoreBreakdown *ScoreBreakdown `json:"builderScoreBreakdown,omitempty"`
	TalentProfile         *TalentProfile  `json:"talentProfile,omitempty"`
	Socials               *SocialHandles  `json:"socials,omitempty"`
	Accounts              []AccountRef    `json:"accounts,omitempty"`
	Projects              []ProjectRef    `json:"projects,omitempty"`
	TopCredentials        []CredentialRef `json:"topCredentials,omitempty"`
}
