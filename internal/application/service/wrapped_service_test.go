package service

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"base-wrapped-api/internal/domain/entity"
	domainservice "base-wrapped-api/internal/domain/service"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

type mockChainRepo struct {
	calls             atomic.Int32
	transactions      []*entity.Transaction
	tokenTransfers    []*entity.TokenTransfer
	nftTransfers      []*entity.NFTTransfer
	multiTransfers    []*entity.NFTTransfer
	contractCreations []*entity.ContractCreation
	firstTransaction  *entity.FirstTransaction
}

func (m *mockChainRepo) ListTransactions(ctx context.Context, address string) []*entity.Transaction {
	m.calls.Add(1)
	return m.transactions
}

func (m *mockChainRepo) ListInternalTransactions(ctx context.Context, address string) []*entity.Transaction {
	m.calls.Add(1)
	return nil
}

func (m *mockChainRepo) ListTokenTransfers(ctx context.Context, address string) []*entity.TokenTransfer {
	m.calls.Add(1)
	return m.tokenTransfers
}

func (m *mockChainRepo) ListNFTTransfers(ctx context.Context, address string) []*entity.NFTTransfer {
	m.calls.Add(1)
	return m.nftTransfers
}

func (m *mockChainRepo) ListMultiTokenTransfers(ctx context.Context, address string) []*entity.NFTTransfer {
	m.calls.Add(1)
	return m.multiTransfers
}

func (m *mockChainRepo) ListContractCreations(ctx context.Context, address string) []*entity.ContractCreation {
	m.calls.Add(1)
	return m.contractCreations
}

func (m *mockChainRepo) GetFirstTransaction(ctx context.Context, address string) *entity.FirstTransaction {
	m.calls.Add(1)
	return m.firstTransaction
}

type mockEnrichedRepo struct {
	calls    atomic.Int32
	activity *entity.EnrichedActivity
}

func (m *mockEnrichedRepo) FetchActivity(ctx context.Context, address string) *entity.EnrichedActivity {
	m.calls.Add(1)
	if m.activity == nil {
		return &entity.EnrichedActivity{}
	}
	return m.activity
}

func newTestService(chain *mockChainRepo, enriched *mockEnrichedRepo) *wrappedService {
	cfg := &config.Config{Wrapped: config.WrappedConfig{Year: 2025}}
	svc := NewWrappedService(chain, enriched, domainservice.NewPersonalityClassifier(), cfg, logger.NewNop())
	return svc.(*wrappedService)
}

// txAt builds a successful outbound transaction at the given time.
func txAt(ts time.Time, value string) *entity.Transaction {
	return &entity.Transaction{
		TimeStamp: strconv.FormatInt(ts.Unix(), 10),
		Hash:      fmt.Sprintf("0xhash%d", ts.Unix()),
		From:      testAddress,
		To:        "0xaaaa567890abcdef1234567890abcdef12345678",
		Value:     value,
		GasUsed:   "21000",
		GasPrice:  "1000000000",
		IsError:   "0",
	}
}

func TestComputeWrappedStatsInvalidAddress(t *testing.T) {
	svc := newTestService(&mockChainRepo{}, &mockEnrichedRepo{})

	_, err := svc.ComputeWrappedStats(context.Background(), "not-an-address")
	require.Error(t, err)
}

func TestComputeWrappedStatsZeroActivity(t *testing.T) {
	svc := newTestService(&mockChainRepo{}, &mockEnrichedRepo{})

	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalTransactions)
	assert.Equal(t, "0", stats.TotalGasSpentWei)
	assert.Equal(t, "0.000000", stats.TotalGasSpentEth)

	assert.Equal(t, "N/A", stats.MostActiveDay)
	assert.Equal(t, "N/A", stats.MostActiveMonth)
	assert.Equal(t, "N/A", stats.FirstTxDate)
	assert.Equal(t, "N/A", stats.LastTxDate)

	require.NotNil(t, stats.Builder)
	assert.False(t, stats.Builder.IsBuilder)

	require.NotNil(t, stats.Personality)
	assert.Equal(t, entity.ArchetypeExplorer, stats.Personality.Type)

	assert.Nil(t, stats.OriginStory)
	assert.Nil(t, stats.Streaks)
	assert.Nil(t, stats.Volume)

	// Builder and percentile stay populated even with no activity.
	require.NotNil(t, stats.Percentile)
	assert.Equal(t, 10, stats.Percentile.Transactions)
}

func TestComputeWrappedStatsCountsInvariant(t *testing.T) {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	failed := txAt(base.Add(time.Hour), "0")
	failed.IsError = "1"

	chain := &mockChainRepo{
		transactions: []*entity.Transaction{
			txAt(base, "1000000000000000000"),
			failed,
			txAt(base.Add(2*time.Hour), "500000000000000000"),
		},
	}
	svc := newTestService(chain, &mockEnrichedRepo{})

	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTransactions)
	assert.Equal(t, stats.TotalTransactions, stats.SuccessfulTransactions+stats.FailedTransactions)
	assert.Equal(t, 2, stats.SuccessfulTransactions)
	assert.Equal(t, "1.500000", stats.TotalValueSentEth)
}

func TestTopDappsBoundedAndSorted(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	var txs []*entity.Transaction
	// Seven distinct recipients with descending interaction counts.
	for i := 0; i < 7; i++ {
		recipient := fmt.Sprintf("0x%040d", i)
		for j := 0; j <= 7-i; j++ {
			tx := txAt(base.Add(time.Duration(i*100+j)*time.Minute), "0")
			tx.To = recipient
			txs = append(txs, tx)
		}
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.UniqueContractsInteracted)
	require.Len(t, stats.TopDapps, 5)
	for i := 1; i < len(stats.TopDapps); i++ {
		assert.GreaterOrEqual(t, stats.TopDapps[i-1].Count, stats.TopDapps[i].Count)
	}
}

func TestUniqueContractsIndependentOfEnrichedRanking(t *testing.T) {
	base := time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{txAt(base, "0"), txAt(base.Add(time.Hour), "0")}
	txs[1].To = "0xbbbb567890abcdef1234567890abcdef12345678"

	enriched := &mockEnrichedRepo{activity: &entity.EnrichedActivity{
		TopDapps: []entity.DappInteraction{
			{Name: "Uniswap", Count: 40},
			{Name: "Aerodrome", Count: 12},
			{Name: "Zora", Count: 3},
		},
	}}

	svc := newTestService(&mockChainRepo{transactions: txs}, enriched)
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	// The display list comes from the enriched feed, the unique-contract
	// count from raw recipients.
	assert.Len(t, stats.TopDapps, 3)
	assert.Equal(t, "Uniswap", stats.TopDapps[0].Name)
	assert.Equal(t, 2, stats.UniqueContractsInteracted)
}

func TestLongestStreakWithGap(t *testing.T) {
	start := time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)
	var txs []*entity.Transaction
	for _, offset := range []int{0, 1, 2, 8} {
		txs = append(txs, txAt(start.AddDate(0, 0, offset), "0"))
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	require.NotNil(t, stats.Streaks)
	assert.Equal(t, 3, stats.Streaks.LongestStreak)
	assert.Equal(t, 4, stats.Streaks.ActiveDays)
	assert.Equal(t, 0, stats.Streaks.CurrentStreak)
}

func TestCurrentStreakWindowCap(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	var txs []*entity.Transaction
	// 40 consecutive active days ending today.
	for i := 0; i < 40; i++ {
		txs = append(txs, txAt(now.AddDate(0, 0, -i), "0"))
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	svc.now = func() time.Time { return now }

	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	require.NotNil(t, stats.Streaks)
	assert.Equal(t, 40, stats.Streaks.LongestStreak)
	assert.Equal(t, 30, stats.Streaks.CurrentStreak)
}

func TestBuilderScenario(t *testing.T) {
	start := time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)
	var txs []*entity.Transaction
	for i := 0; i < 150; i++ {
		txs = append(txs, txAt(start.AddDate(0, 0, i), "0"))
	}

	chain := &mockChainRepo{
		transactions: txs,
		contractCreations: []*entity.ContractCreation{
			{Address: "0xc0de", Hash: "0xdeploy1", Timestamp: start.Unix()},
			{Address: "0xc0df", Hash: "0xdeploy2", Timestamp: start.AddDate(0, 0, 3).Unix()},
		},
		firstTransaction: &entity.FirstTransaction{
			Date:      "January 1, 2025",
			Timestamp: start.Unix(),
			Hash:      "0xfirst",
		},
	}

	svc := newTestService(chain, &mockEnrichedRepo{})
	svc.now = func() time.Time { return start.AddDate(0, 0, 200) }

	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	require.NotNil(t, stats.Builder)
	assert.True(t, stats.Builder.IsBuilder)
	assert.Equal(t, 2, stats.Builder.ContractsDeployed)

	require.NotNil(t, stats.Streaks)
	assert.Equal(t, 150, stats.Streaks.LongestStreak)

	require.NotNil(t, stats.Percentile)
	assert.Equal(t, 75, stats.Percentile.Transactions)

	require.NotNil(t, stats.Personality)
	assert.Equal(t, entity.ArchetypeBuilder, stats.Personality.Type)

	require.NotNil(t, stats.OriginStory)
	assert.Equal(t, 200, stats.OriginStory.DaysOnChain)
	assert.False(t, stats.OriginStory.JoinedBefore2024)
}

func TestNFTAndJoinDate(t *testing.T) {
	base := time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC)
	later := base.AddDate(0, 1, 0)

	chain := &mockChainRepo{
		nftTransfers: []*entity.NFTTransfer{
			// Mint to the wallet.
			{TimeStamp: strconv.FormatInt(base.Unix(), 10), From: entity.ZeroAddress, To: testAddress,
				ContractAddress: "0x1111", TokenName: "Base Punks", TokenSymbol: "BPUNK", TokenID: "7"},
			// Membership NFT received twice; the earlier one is the join date.
			{TimeStamp: strconv.FormatInt(later.Unix(), 10), From: "0xdead", To: testAddress,
				ContractAddress: entity.AppMembershipNFT, TokenName: "Base App", TokenSymbol: "BAPP", TokenID: "2"},
			{TimeStamp: strconv.FormatInt(base.Unix(), 10), From: "0xdead", To: testAddress,
				ContractAddress: entity.AppMembershipNFT, TokenName: "Base App", TokenSymbol: "BAPP", TokenID: "1"},
		},
		multiTransfers: []*entity.NFTTransfer{
			{TimeStamp: strconv.FormatInt(base.Unix(), 10), From: testAddress, To: "0xbeef",
				ContractAddress: "0x2222", TokenName: "Onchain Summer", TokenSymbol: "OCS", TokenID: "3"},
		},
	}

	svc := newTestService(chain, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.NFTsMinted)
	assert.Equal(t, 2, stats.NFTsReceived)
	assert.Equal(t, 1, stats.NFTsSent)
	assert.Equal(t, 3, stats.UniqueNFTCollections)

	require.NotNil(t, stats.AppJoinDate)
	assert.Equal(t, "Jun 1, 2025", stats.AppJoinDate.Date)
	assert.Equal(t, "1", stats.AppJoinDate.TokenID)
	assert.True(t, stats.AppJoinDate.IsEarlyAdopter)
}

func TestTemporalBuckets(t *testing.T) {
	// Monday 02:00, Monday 23:00, Tuesday 12:00 — all in March 2025.
	monday := time.Date(2025, time.March, 3, 2, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{
		txAt(monday, "0"),
		txAt(monday.Add(21*time.Hour), "0"),
		txAt(monday.AddDate(0, 0, 1).Add(10*time.Hour), "0"),
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, "Monday", stats.MostActiveDay)
	assert.Equal(t, "March", stats.MostActiveMonth)
	assert.Equal(t, 1, stats.EarlyBirdTxs)
	assert.Equal(t, 1, stats.NightOwlTxs)
	assert.Equal(t, "Mar 3, 2025", stats.FirstTxDate)
	assert.Equal(t, "Mar 4, 2025", stats.LastTxDate)

	require.NotNil(t, stats.PeakDay)
	assert.Equal(t, "Mar 3, 2025", stats.PeakDay.Date)
	assert.Equal(t, 2, stats.PeakDay.TxCount)
	assert.Equal(t, "Your most active day", stats.PeakDay.Description)

	require.Len(t, stats.MonthlyBreakdown, 1)
	assert.Equal(t, "March", stats.MonthlyBreakdown[0].Month)
	assert.Equal(t, 3, stats.MonthlyBreakdown[0].TxCount)

	require.NotNil(t, stats.FirstTransaction)
	assert.Equal(t, "contract_call", stats.FirstTransaction.Type)
}

func TestLargestTransactionFirstWinsTies(t *testing.T) {
	base := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{
		txAt(base, "2000000000000000000"),
		txAt(base.Add(time.Hour), "2000000000000000000"),
		txAt(base.Add(2*time.Hour), "1000000000000000000"),
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	require.NotNil(t, stats.Volume)
	assert.Equal(t, txs[0].Hash, stats.Volume.LargestSingleTx.Hash)
	assert.Equal(t, "2.000000", stats.Volume.LargestSingleTx.Value)
}

func TestLargestTransactionAllZeroValues(t *testing.T) {
	base := time.Date(2025, time.July, 2, 10, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{
		txAt(base, "0"),
		txAt(base.Add(time.Hour), "0"),
	}

	svc := newTestService(&mockChainRepo{transactions: txs}, &mockEnrichedRepo{})
	stats, err := svc.ComputeWrappedStats(context.Background(), testAddress)
	require.NoError(t, err)

	// A contract-calls-only wallet still gets a concrete largest tx: the
	// first one, at zero value.
	require.NotNil(t, stats.Volume)
	assert.Equal(t, txs[0].Hash, stats.Volume.LargestSingleTx.Hash)
	assert.Equal(t, "0.000000", stats.Volume.LargestSingleTx.Value)
	assert.Equal(t, "Jul 2, 2025", stats.Volume.LargestSingleTx.Date)
}

func TestPercentileThresholds(t *testing.T) {
	txCases := map[int]int{
		0: 10, 9: 10, 10: 25, 49: 25, 50: 50, 99: 50,
		100: 75, 499: 75, 500: 90, 999: 90, 1000: 95, 4999: 95, 5000: 99,
	}
	for count, want := range txCases {
		assert.Equal(t, want, txPercentile(count), "tx count %d", count)
	}

	gasCases := map[string]int{
		"0.000000": 20, "0.000999": 20, "0.001000": 40,
		"0.010000": 70, "0.100000": 90, "1.000000": 99, "2.500000": 99,
	}
	for eth, want := range gasCases {
		assert.Equal(t, want, gasPercentile(eth), "gas %s", eth)
	}

	contractCases := map[int]int{
		0: 30, 9: 30, 10: 60, 19: 60, 20: 80, 49: 80, 50: 95, 99: 95, 100: 99,
	}
	for count, want := range contractCases {
		assert.Equal(t, want, contractPercentile(count), "contracts %d", count)
	}
}

func TestDemoStatsMakesNoFetcherCalls(t *testing.T) {
	chain := &mockChainRepo{}
	enriched := &mockEnrichedRepo{}
	svc := newTestService(chain, enriched)

	stats := svc.DemoStats()

	assert.Greater(t, stats.TotalTransactions, 0)
	assert.Equal(t, stats.TotalTransactions, stats.SuccessfulTransactions+stats.FailedTransactions)
	assert.Equal(t, int32(0), chain.calls.Load())
	assert.Equal(t, int32(0), enriched.calls.Load())
}
