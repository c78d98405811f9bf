package service

import (
	"base-wrapped-api/internal/domain/entity"
)

// DemoStats returns a fixed, fully populated WrappedStats record for the
// demo endpoint. No fetcher is touched; the values are hand-picked to light
// up every section of the slideshow.
func (s *wrappedService) DemoStats() *entity.WrappedStats {
	personality := entity.PersonalityFor(entity.ArchetypePowerUser)
	score := 72

	return &entity.WrappedStats{
		TotalTransactions:      847,
		SuccessfulTransactions: 832,
		FailedTransactions:     15,

		TotalGasSpentWei: "42000000000000000",
		TotalGasSpentEth: "0.042000",
		AvgGasPerTx:      "0.000049",

		TotalValueSentWei:     "3200000000000000000",
		TotalValueSentEth:     "3.200000",
		TotalValueReceivedWei: "5100000000000000000",
		TotalValueReceivedEth: "5.100000",

		TopDapps: []entity.DappInteraction{
			{Name: "Uniswap", Count: 156},
			{Name: "Aerodrome", Count: 89},
			{Name: "friend.tech", Count: 67},
			{Name: "Zora", Count: 45},
			{Name: "Base Bridge", Count: 23},
		},
		UniqueContractsInteracted: 64,

		NFTsMinted:           12,
		NFTsReceived:         8,
		NFTsSent:             3,
		UniqueNFTCollections: 9,
		TopNFTCollections: []entity.CollectionStat{
			{Name: "Base Punks", Symbol: "BPUNK", Count: 5},
			{Name: "Onchain Summer", Symbol: "OCS", Count: 4},
			{Name: "Zora Creates", Symbol: "ZORA", Count: 3},
		},

		UniqueTokensTraded: 14,
		TopTokens: []entity.CollectionStat{
			{Name: "USD Coin", Symbol: "USDC", Count: 203},
			{Name: "Degen", Symbol: "DEGEN", Count: 87},
			{Name: "Brett", Symbol: "BRETT", Count: 41},
			{Name: "Wrapped Ether", Symbol: "WETH", Count: 36},
			{Name: "Toshi", Symbol: "TOSHI", Count: 19},
		},

		MostActiveMonth: "August",
		MostActiveDay:   "Wednesday",
		FirstTxDate:     "Jan 3, 2025",
		LastTxDate:      "Dec 28, 2025",

		BusyDaysCount: 38,
		EarlyBirdTxs:  42,
		NightOwlTxs:   118,

		Personality: &personality,
		Milestones: []entity.Milestone{
			{ID: "century_club", Title: "Century Club", Description: "100 transactions on Base", Emoji: "Award", Achieved: true},
			{ID: "first_mint", Title: "First Mint", Description: "Minted your first NFT", Emoji: "Paintbrush", Achieved: true},
			{ID: "whale_watch", Title: "Whale Watch", Description: "Moved 10+ ETH on Base", Emoji: "Anchor", Achieved: false},
			{ID: "early_bird", Title: "Early Bird", Description: "Started before June 2025", Emoji: "Sunrise", Achieved: true},
			{ID: "protocol_explorer", Title: "Protocol Explorer", Description: "Interacted with 20+ protocols", Emoji: "Compass", Achieved: true},
			{ID: "power_user", Title: "Power User", Description: "10+ days with 5+ transactions", Emoji: "Zap", Achieved: true},
		},
		FirstTransaction: &entity.FirstTxSummary{
			Hash:  "0x3f1a6c9e5d2b8a7f4e0c1d9b6a5f3e2d1c0b9a8f7e6d5c4b3a2f1e0d9c8b7a6f",
			Date:  "Jan 3, 2025",
			Type:  "contract_call",
			Value: "0.050000",
		},
		PeakDay: &entity.PeakDay{
			Date:        "Aug 13, 2025",
			TxCount:     27,
			Description: "You went absolutely wild!",
		},
		MonthlyBreakdown: []entity.MonthlyActivity{
			{Month: "January", TxCount: 34, TopDapp: "Uniswap"},
			{Month: "February", TxCount: 41, TopDapp: "Uniswap"},
			{Month: "March", TxCount: 58, TopDapp: "Uniswap"},
			{Month: "April", TxCount: 62, TopDapp: "Uniswap"},
			{Month: "May", TxCount: 71, TopDapp: "Uniswap"},
			{Month: "June", TxCount: 66, TopDapp: "Uniswap"},
			{Month: "July", TxCount: 89, TopDapp: "Uniswap"},
			{Month: "August", TxCount: 124, TopDapp: "Uniswap"},
			{Month: "September", TxCount: 93, TopDapp: "Uniswap"},
			{Month: "October", TxCount: 78, TopDapp: "Uniswap"},
			{Month: "November", TxCount: 72, TopDapp: "Uniswap"},
			{Month: "December", TxCount: 59, TopDapp: "Uniswap"},
		},
		AppJoinDate: &entity.AppJoinDate{
			Date:           "Feb 14, 2025",
			TokenID:        "18234",
			IsEarlyAdopter: true,
		},
		OriginStory: &entity.OriginStory{
			FirstEverTxDate:  "September 12, 2023",
			FirstEverTxHash:  "0x8b2d4f6a1c3e5d7b9a0f2e4c6d8b0a1f3e5c7d9b1a3f5e7c9d1b3a5f7e9c1d3b",
			DaysOnChain:      836,
			JoinedBefore2024: true,
		},
		Streaks: &entity.Streaks{
			LongestStreak:      23,
			CurrentStreak:      4,
			ActiveDays:         211,
			ActiveDaysThisYear: 187,
		},
		Percentile: &entity.Percentile{
			Transactions: 90,
			GasSpent:     70,
			Contracts:    95,
			Overall:      85,
		},
		Builder: &entity.BuilderStatus{
			IsBuilder:         false,
			ContractsDeployed: 0,
			DeployedContracts: []entity.DeployedContract{},
		},
		Volume: &entity.VolumeStats{
			LargestSingleTx: entity.LargestTx{
				Hash:  "0x5c7e9b1d3f5a7c9e1b3d5f7a9c1e3b5d7f9a1c3e5b7d9f1a3c5e7b9d1f3a5c7e",
				Value: "1.250000",
				Date:  "Aug 13, 2025",
			},
			HighestValueSwap: &entity.SwapHighlight{
				AmountUSD:   2840.50,
				TokenSymbol: "DEGEN",
				Date:        "2025-08-13T14:22:00Z",
			},
			TotalSwapVolumeUSD: 48210.75,
		},

		BuilderScore: &score,
	}
}
