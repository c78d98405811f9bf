package service

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"sync"
	"time"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/domain/repository"
	domainservice "base-wrapped-api/internal/domain/service"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/logger"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	topListLimit = 5

	// Current-streak computation walks only the most recent 30 distinct
	// active dates, so runs longer than that report as 30.
	currentStreakWindow = 30

	dateFormat = "Jan 2, 2006"
)

var weekdayOrder = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// wrappedService implements the stats aggregation pipeline: fan out to the
// fetchers, reconcile their outputs into one per-address timeline, and derive
// every stat from that timeline. Stateless; every request computes from
// scratch.
type wrappedService struct {
	chain      repository.ChainActivityRepository
	enriched   repository.EnrichedActivityRepository
	classifier *domainservice.PersonalityClassifier
	year       int
	logger     *logger.Logger
	now        func() time.Time
}

// NewWrappedService creates the aggregation service.
func NewWrappedService(
	chain repository.ChainActivityRepository,
	enriched repository.EnrichedActivityRepository,
	classifier *domainservice.PersonalityClassifier,
	cfg *config.Config,
	log *logger.Logger,
) domainservice.WrappedService {
	return &wrappedService{
		chain:      chain,
		enriched:   enriched,
		classifier: classifier,
		year:       cfg.Wrapped.Year,
		logger:     log.WithComponent("wrapped-service"),
		now:        time.Now,
	}
}

// fetchResult collects the settled outputs of the concurrent fan-out.
type fetchResult struct {
	transactions []*entity.Transaction
	// Internal transactions are fetched alongside the rest of the fan-out
	// but not yet folded into any derived stat.
	internalTransactions []*entity.Transaction
	tokenTransfers       []*entity.TokenTransfer
	nftTransfers         []*entity.NFTTransfer
	multiTokenTransfers  []*entity.NFTTransfer
	contractCreations    []*entity.ContractCreation
	firstTransaction     *entity.FirstTransaction
	enrichedActivity     *entity.EnrichedActivity
}

func (s *wrappedService) fetchAll(ctx context.Context, address string) *fetchResult {
	result := &fetchResult{}

	var wg sync.WaitGroup
	wg.Add(8)
	go func() { defer wg.Done(); result.transactions = s.chain.ListTransactions(ctx, address) }()
	go func() { defer wg.Done(); result.internalTransactions = s.chain.ListInternalTransactions(ctx, address) }()
	go func() { defer wg.Done(); result.tokenTransfers = s.chain.ListTokenTransfers(ctx, address) }()
	go func() { defer wg.Done(); result.nftTransfers = s.chain.ListNFTTransfers(ctx, address) }()
	go func() { defer wg.Done(); result.multiTokenTransfers = s.chain.ListMultiTokenTransfers(ctx, address) }()
	go func() { defer wg.Done(); result.contractCreations = s.chain.ListContractCreations(ctx, address) }()
	go func() { defer wg.Done(); result.firstTransaction = s.chain.GetFirstTransaction(ctx, address) }()
	go func() { defer wg.Done(); result.enrichedActivity = s.enriched.FetchActivity(ctx, address) }()
	wg.Wait()

	return result
}

// ComputeWrappedStats aggregates one address's activity into WrappedStats.
// The only error is a malformed address; upstream failures degrade to
// zeroed stats inside the fetchers.
func (s *wrappedService) ComputeWrappedStats(ctx context.Context, address string) (*entity.WrappedStats, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address: %s", address)
	}
	normalized := entity.NormalizeAddress(address)

	fetched := s.fetchAll(ctx, normalized)
	s.logger.Info("Fetched wallet activity",
		zap.String("address", normalized),
		zap.Int("transactions", len(fetched.transactions)),
		zap.Int("token_transfers", len(fetched.tokenTransfers)),
		zap.Int("nft_transfers", len(fetched.nftTransfers)+len(fetched.multiTokenTransfers)),
		zap.Int("contract_creations", len(fetched.contractCreations)))

	stats := &entity.WrappedStats{}

	// Ascending order drives first/last dates, the peak-day tie-break and
	// the streak walk.
	txs := make([]*entity.Transaction, len(fetched.transactions))
	copy(txs, fetched.transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Unix() < txs[j].Unix() })

	s.computeBasicCounts(stats, txs, normalized)
	s.computeDappStats(stats, txs, fetched.enrichedActivity)
	s.computeNFTStats(stats, fetched.nftTransfers, fetched.multiTokenTransfers, normalized)
	s.computeTokenStats(stats, fetched.tokenTransfers)
	s.computeTemporalStats(stats, txs)
	s.computeStreaks(stats, txs)
	s.computePercentile(stats)
	s.computeOriginStory(stats, fetched.firstTransaction)
	s.computeBuilderStatus(stats, fetched.contractCreations)
	s.computeVolume(stats, txs, fetched.enrichedActivity)
	s.classify(stats, fetched.firstTransaction)

	return stats, nil
}

// computeBasicCounts fills transaction counts, gas totals and value totals.
// All wei arithmetic runs on big.Int accumulators.
func (s *wrappedService) computeBasicCounts(stats *entity.WrappedStats, txs []*entity.Transaction, address string) {
	stats.TotalTransactions = len(txs)

	totalGas := new(big.Int)
	valueSent := new(big.Int)
	valueReceived := new(big.Int)

	for _, tx := range txs {
		if tx.IsError == "0" {
			stats.SuccessfulTransactions++
		}

		if entity.NormalizeAddress(tx.From) == address {
			// Gas is paid by the sender only.
			gasCost := new(big.Int).Mul(entity.ParseWei(tx.GasUsed), entity.ParseWei(tx.GasPrice))
			totalGas.Add(totalGas, gasCost)
			valueSent.Add(valueSent, entity.ParseWei(tx.Value))
		}
		if entity.NormalizeAddress(tx.To) == address {
			valueReceived.Add(valueReceived, entity.ParseWei(tx.Value))
		}
	}
	stats.FailedTransactions = stats.TotalTransactions - stats.SuccessfulTransactions

	avgGas := new(big.Int)
	if len(txs) > 0 {
		avgGas.Quo(totalGas, big.NewInt(int64(len(txs))))
	}

	stats.TotalGasSpentWei = totalGas.String()
	stats.TotalGasSpentEth = entity.WeiToEth(totalGas.String())
	stats.AvgGasPerTx = entity.WeiToEth(avgGas.String())
	stats.TotalValueSentWei = valueSent.String()
	stats.TotalValueSentEth = entity.WeiToEth(valueSent.String())
	stats.TotalValueReceivedWei = valueReceived.String()
	stats.TotalValueReceivedEth = entity.WeiToEth(valueReceived.String())
}

// computeDappStats builds the recipient->count map that defines
// uniqueContractsInteracted, then picks the topDapps source: the enriched
// ranking when present, the local map otherwise. The two paths are
// independent; enriched naming never changes the unique-contract count.
func (s *wrappedService) computeDappStats(stats *entity.WrappedStats, txs []*entity.Transaction, enriched *entity.EnrichedActivity) {
	counts := make(map[string]int)
	var order []string
	for _, tx := range txs {
		to := entity.NormalizeAddress(tx.To)
		if to == "" {
			continue
		}
		if _, seen := counts[to]; !seen {
			order = append(order, to)
		}
		counts[to]++
	}
	stats.UniqueContractsInteracted = len(counts)

	if enriched != nil && len(enriched.TopDapps) > 0 {
		stats.TopDapps = enriched.TopDapps
		return
	}

	ranked := make([]entity.DappInteraction, 0, len(order))
	for _, addr := range order {
		name, known := entity.KnownDapps[addr]
		if !known {
			name = entity.ShortAddress(addr)
		}
		ranked = append(ranked, entity.DappInteraction{
			Name:    name,
			Address: addr,
			Count:   counts[addr],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topListLimit {
		ranked = ranked[:topListLimit]
	}
	stats.TopDapps = ranked
}

// computeNFTStats merges ERC-721 and ERC-1155 transfers into one sequence;
// collection attribution is identical for both standards.
func (s *wrappedService) computeNFTStats(stats *entity.WrappedStats, nft, multi []*entity.NFTTransfer, address string) {
	merged := make([]*entity.NFTTransfer, 0, len(nft)+len(multi))
	merged = append(merged, nft...)
	merged = append(merged, multi...)

	type collection struct {
		name   string
		symbol string
		count  int
	}
	collections := make(map[string]*collection)
	var order []string

	var joinTransfer *entity.NFTTransfer

	for _, transfer := range merged {
		from := entity.NormalizeAddress(transfer.From)
		to := entity.NormalizeAddress(transfer.To)
		contract := entity.NormalizeAddress(transfer.ContractAddress)

		switch {
		case from == entity.ZeroAddress && to == address:
			stats.NFTsMinted++
		case to == address:
			stats.NFTsReceived++
		}
		if from == address {
			stats.NFTsSent++
		}

		// The membership NFT marks the companion-app join date; the
		// earliest receipt wins.
		if to == address && contract == entity.AppMembershipNFT {
			if joinTransfer == nil || transfer.Unix() < joinTransfer.Unix() {
				joinTransfer = transfer
			}
		}

		if existing, ok := collections[contract]; ok {
			existing.count++
		} else {
			collections[contract] = &collection{name: transfer.TokenName, symbol: transfer.TokenSymbol, count: 1}
			order = append(order, contract)
		}
	}

	stats.UniqueNFTCollections = len(collections)

	ranked := make([]entity.CollectionStat, 0, len(order))
	for _, contract := range order {
		c := collections[contract]
		ranked = append(ranked, entity.CollectionStat{Name: c.name, Symbol: c.symbol, Count: c.count})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topListLimit {
		ranked = ranked[:topListLimit]
	}
	stats.TopNFTCollections = ranked

	if joinTransfer != nil {
		stats.AppJoinDate = &entity.AppJoinDate{
			Date:           time.Unix(joinTransfer.Unix(), 0).UTC().Format(dateFormat),
			TokenID:        joinTransfer.TokenID,
			IsEarlyAdopter: true,
		}
	}
}

// computeTokenStats groups ERC-20 transfers by token contract.
func (s *wrappedService) computeTokenStats(stats *entity.WrappedStats, transfers []*entity.TokenTransfer) {
	type token struct {
		name   string
		symbol string
		count  int
	}
	tokens := make(map[string]*token)
	var order []string

	for _, transfer := range transfers {
		contract := entity.NormalizeAddress(transfer.ContractAddress)
		if existing, ok := tokens[contract]; ok {
			existing.count++
		} else {
			tokens[contract] = &token{name: transfer.TokenName, symbol: transfer.TokenSymbol, count: 1}
			order = append(order, contract)
		}
	}

	stats.UniqueTokensTraded = len(tokens)

	ranked := make([]entity.CollectionStat, 0, len(order))
	for _, contract := range order {
		t := tokens[contract]
		ranked = append(ranked, entity.CollectionStat{Name: t.name, Symbol: t.symbol, Count: t.count})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topListLimit {
		ranked = ranked[:topListLimit]
	}
	stats.TopTokens = ranked
}

// computeTemporalStats buckets transactions by UTC weekday, month, calendar
// date and hour. Most-active ties resolve to the earliest entry in the fixed
// calendar order. Expects txs sorted ascending.
func (s *wrappedService) computeTemporalStats(stats *entity.WrappedStats, txs []*entity.Transaction) {
	if len(txs) == 0 {
		stats.MostActiveDay = "N/A"
		stats.MostActiveMonth = "N/A"
		stats.FirstTxDate = "N/A"
		stats.LastTxDate = "N/A"
		return
	}

	weekdays := make(map[string]int)
	months := make(map[string]int)
	dates := make(map[string]int)
	var dateOrder []string

	for _, tx := range txs {
		ts := time.Unix(tx.Unix(), 0).UTC()

		weekdays[ts.Weekday().String()]++
		months[ts.Month().String()]++

		date := ts.Format(dateFormat)
		if _, seen := dates[date]; !seen {
			dateOrder = append(dateOrder, date)
		}
		dates[date]++

		if ts.Hour() < 6 {
			stats.EarlyBirdTxs++
		}
		if ts.Hour() >= 22 {
			stats.NightOwlTxs++
		}
	}

	stats.MostActiveDay = maxBucket(weekdayOrder, weekdays)
	stats.MostActiveMonth = maxBucket(monthOrder, months)

	for _, count := range dates {
		if count >= 5 {
			stats.BusyDaysCount++
		}
	}

	first := txs[0]
	last := txs[len(txs)-1]
	stats.FirstTxDate = time.Unix(first.Unix(), 0).UTC().Format(dateFormat)
	stats.LastTxDate = time.Unix(last.Unix(), 0).UTC().Format(dateFormat)

	txType := "transfer"
	if first.To != "" {
		txType = "contract_call"
	}
	stats.FirstTransaction = &entity.FirstTxSummary{
		Hash:  first.Hash,
		Date:  stats.FirstTxDate,
		Type:  txType,
		Value: entity.WeiToEth(first.Value),
	}

	peakDate, peakCount := "", 0
	for _, date := range dateOrder {
		if dates[date] > peakCount {
			peakDate, peakCount = date, dates[date]
		}
	}
	stats.PeakDay = &entity.PeakDay{
		Date:        peakDate,
		TxCount:     peakCount,
		Description: peakDayDescription(peakCount),
	}

	var monthly []entity.MonthlyActivity
	topDapp := ""
	if len(stats.TopDapps) > 0 {
		topDapp = stats.TopDapps[0].Name
	}
	for _, month := range monthOrder {
		if months[month] == 0 {
			continue
		}
		monthly = append(monthly, entity.MonthlyActivity{
			Month:   month,
			TxCount: months[month],
			TopDapp: topDapp,
		})
	}
	stats.MonthlyBreakdown = monthly
}

// maxBucket returns the key with the strictly highest count, walking keys in
// their canonical order so ties resolve deterministically.
func maxBucket(order []string, counts map[string]int) string {
	best, bestCount := "", 0
	for _, key := range order {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	return best
}

func peakDayDescription(count int) string {
	switch {
	case count >= 20:
		return "You went absolutely wild!"
	case count >= 10:
		return "Busy day on Base!"
	default:
		return "Your most active day"
	}
}

// computeStreaks derives consecutive-day runs from the distinct set of
// active calendar dates. Expects txs sorted ascending; leaves Streaks nil
// when there is no activity.
func (s *wrappedService) computeStreaks(stats *entity.WrappedStats, txs []*entity.Transaction) {
	if len(txs) == 0 {
		return
	}

	daySet := make(map[int64]struct{})
	for _, tx := range txs {
		daySet[tx.Unix()/86400] = struct{}{}
	}
	days := make([]int64, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	activeThisYear := 0
	for _, day := range days {
		if time.Unix(day*86400, 0).UTC().Year() == s.year {
			activeThisYear++
		}
	}

	// Current streak only counts when the wallet was active today or
	// yesterday, and the backward walk is capped at the last 30 distinct
	// dates. Longer live runs report as 30.
	current := 0
	today := s.now().UTC().Unix() / 86400
	lastActive := days[len(days)-1]
	if lastActive == today || lastActive == today-1 {
		current = 1
		floor := len(days) - currentStreakWindow
		if floor < 0 {
			floor = 0
		}
		for i := len(days) - 1; i > floor; i-- {
			if days[i-1] != days[i]-1 {
				break
			}
			current++
		}
	}

	stats.Streaks = &entity.Streaks{
		LongestStreak:      longest,
		CurrentStreak:      current,
		ActiveDays:         len(days),
		ActiveDaysThisYear: activeThisYear,
	}
}

// computePercentile maps counts to heuristic 0-100 engagement scores via
// fixed thresholds. Not real population percentiles.
func (s *wrappedService) computePercentile(stats *entity.WrappedStats) {
	txPct := txPercentile(stats.TotalTransactions)
	gasPct := gasPercentile(stats.TotalGasSpentEth)
	contractPct := contractPercentile(stats.UniqueContractsInteracted)

	stats.Percentile = &entity.Percentile{
		Transactions: txPct,
		GasSpent:     gasPct,
		Contracts:    contractPct,
		Overall:      int(math.Round(float64(txPct+gasPct+contractPct) / 3.0)),
	}
}

func txPercentile(count int) int {
	switch {
	case count >= 5000:
		return 99
	case count >= 1000:
		return 95
	case count >= 500:
		return 90
	case count >= 100:
		return 75
	case count >= 50:
		return 50
	case count >= 10:
		return 25
	default:
		return 10
	}
}

func gasPercentile(totalEth string) int {
	eth, err := strconv.ParseFloat(totalEth, 64)
	if err != nil {
		eth = 0
	}
	switch {
	case eth >= 1:
		return 99
	case eth >= 0.1:
		return 90
	case eth >= 0.01:
		return 70
	case eth >= 0.001:
		return 40
	default:
		return 20
	}
}

func contractPercentile(count int) int {
	switch {
	case count >= 100:
		return 99
	case count >= 50:
		return 95
	case count >= 20:
		return 80
	case count >= 10:
		return 60
	default:
		return 30
	}
}

// computeOriginStory renders the first-ever transaction facts; nil when the
// address has no history at all.
func (s *wrappedService) computeOriginStory(stats *entity.WrappedStats, first *entity.FirstTransaction) {
	if first == nil {
		return
	}

	daysOnChain := int((s.now().UTC().Unix() - first.Timestamp) / 86400)
	if daysOnChain < 0 {
		daysOnChain = 0
	}

	stats.OriginStory = &entity.OriginStory{
		FirstEverTxDate:  first.Date,
		FirstEverTxHash:  first.Hash,
		DaysOnChain:      daysOnChain,
		JoinedBefore2024: time.Unix(first.Timestamp, 0).UTC().Year() < 2024,
	}
}

// computeBuilderStatus is always populated; a false flag with an empty list
// is meaningful, unlike the nil-when-unmet optional sections.
func (s *wrappedService) computeBuilderStatus(stats *entity.WrappedStats, creations []*entity.ContractCreation) {
	deployed := make([]entity.DeployedContract, 0, len(creations))
	for _, c := range creations {
		deployed = append(deployed, entity.DeployedContract{
			Address: c.Address,
			Hash:    c.Hash,
			Date:    time.Unix(c.Timestamp, 0).UTC().Format(dateFormat),
		})
	}

	stats.Builder = &entity.BuilderStatus{
		IsBuilder:         len(creations) > 0,
		ContractsDeployed: len(creations),
		DeployedContracts: deployed,
	}
}

// computeVolume finds the largest single transaction by wei value (strictly
// greater, so the first encountered wins ties) and attaches the enriched
// swap highlights.
func (s *wrappedService) computeVolume(stats *entity.WrappedStats, txs []*entity.Transaction, enriched *entity.EnrichedActivity) {
	hasSwapData := enriched != nil && (enriched.HighestValueSwap != nil || enriched.TotalSwapVolumeUSD > 0)
	if len(txs) == 0 && !hasSwapData {
		return
	}

	volume := &entity.VolumeStats{}

	// Seed with the first transaction so an all-zero-value history still
	// reports a concrete largest transaction.
	if len(txs) > 0 {
		largest := entity.ParseWei(txs[0].Value)
		volume.LargestSingleTx = entity.LargestTx{
			Hash:  txs[0].Hash,
			Value: entity.WeiToEth(txs[0].Value),
			Date:  time.Unix(txs[0].Unix(), 0).UTC().Format(dateFormat),
		}
		for _, tx := range txs[1:] {
			value := entity.ParseWei(tx.Value)
			if value.Cmp(largest) > 0 {
				largest = value
				volume.LargestSingleTx = entity.LargestTx{
					Hash:  tx.Hash,
					Value: entity.WeiToEth(tx.Value),
					Date:  time.Unix(tx.Unix(), 0).UTC().Format(dateFormat),
				}
			}
		}
	}

	if hasSwapData {
		volume.HighestValueSwap = enriched.HighestValueSwap
		volume.TotalSwapVolumeUSD = enriched.TotalSwapVolumeUSD
	}
	stats.Volume = volume
}

// classify runs the personality rules and milestone predicates over the
// aggregated facts. The first-ever transaction date feeds the veteran rules;
// without history the in-window first date would hide pre-2024 activity.
func (s *wrappedService) classify(stats *entity.WrappedStats, first *entity.FirstTransaction) {
	var firstTxDate time.Time
	if first != nil {
		firstTxDate = time.Unix(first.Timestamp, 0).UTC()
	}

	contractsDeployed := 0
	if stats.Builder != nil {
		contractsDeployed = stats.Builder.ContractsDeployed
	}

	personality := s.classifier.Classify(&domainservice.PersonalityInput{
		TotalTransactions:         stats.TotalTransactions,
		NFTsMinted:                stats.NFTsMinted,
		NFTsReceived:              stats.NFTsReceived,
		AvgGasPerTxEth:            stats.AvgGasPerTx,
		FirstTxDate:               firstTxDate,
		TopDapps:                  stats.TopDapps,
		TopTokens:                 stats.TopTokens,
		UniqueContractsInteracted: stats.UniqueContractsInteracted,
		TotalValueSentEth:         stats.TotalValueSentEth,
		ContractsDeployed:         contractsDeployed,
	})
	stats.Personality = &personality

	stats.Milestones = s.classifier.Milestones(&domainservice.MilestoneInput{
		TotalTransactions:         stats.TotalTransactions,
		NFTsMinted:                stats.NFTsMinted,
		TotalValueSentEth:         stats.TotalValueSentEth,
		FirstTxDate:               firstTxDate,
		UniqueContractsInteracted: stats.UniqueContractsInteracted,
		BusyDaysCount:             stats.BusyDaysCount,
	})
}
