package service

import (
	"strconv"
	"strings"
	"time"

	"base-wrapped-api/internal/domain/entity"
)

// PersonalityInput carries the aggregated facts the classifier scores
// against. All fields are plain values; the classifier never fetches.
type PersonalityInput struct {
	TotalTransactions         int
	NFTsMinted                int
	NFTsReceived              int
	AvgGasPerTxEth            string
	FirstTxDate               time.Time // zero when the address has no activity
	TopDapps                  []entity.DappInteraction
	TopTokens                 []entity.CollectionStat
	UniqueContractsInteracted int
	TotalValueSentEth         string
	ContractsDeployed         int
}

// MilestoneInput carries the facts the milestone predicates evaluate.
type MilestoneInput struct {
	TotalTransactions         int
	NFTsMinted                int
	TotalValueSentEth         string
	FirstTxDate               time.Time
	UniqueContractsInteracted int
	BusyDaysCount             int
}

// archetypeRule awards points to one archetype when its predicate holds.
// Rules are additive and independent; no rule reads another's score.
type archetypeRule struct {
	archetype entity.Archetype
	points    int
	when      func(in *PersonalityInput) bool
}

// PersonalityClassifier scores the fixed archetype catalogue against
// aggregated facts and picks the highest-scoring one.
type PersonalityClassifier struct {
	rules []archetypeRule
}

// NewPersonalityClassifier builds the classifier with its default rule set.
func NewPersonalityClassifier() *PersonalityClassifier {
	c := &PersonalityClassifier{}
	c.initializeRules()
	return c
}

var (
	earlyAdopterCutoff = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	earlyAdopterBonus  = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	ogCutoff           = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ogBonus            = time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
)

func (c *PersonalityClassifier) initializeRules() {
	c.rules = []archetypeRule{
		// Builder: any deployment wins over everything except OG status.
		{entity.ArchetypeBuilder, 100, func(in *PersonalityInput) bool { return in.ContractsDeployed >= 1 }},
		{entity.ArchetypeBuilder, 50, func(in *PersonalityInput) bool { return in.ContractsDeployed >= 3 }},
		{entity.ArchetypeBuilder, 50, func(in *PersonalityInput) bool { return in.ContractsDeployed >= 10 }},

		{entity.ArchetypeDeFiDegen, 50, func(in *PersonalityInput) bool {
			return dappInteractions(in.TopDapps, entity.DeFiContracts) > int(float64(in.TotalTransactions)*0.4)
		}},
		{entity.ArchetypeDeFiDegen, 30, func(in *PersonalityInput) bool {
			return dappInteractions(in.TopDapps, entity.DeFiContracts) > 50
		}},

		{entity.ArchetypeNFTCollector, 50, func(in *PersonalityInput) bool { return in.NFTsMinted+in.NFTsReceived >= 10 }},
		{entity.ArchetypeNFTCollector, 30, func(in *PersonalityInput) bool { return in.NFTsMinted >= 5 }},

		{entity.ArchetypeBridgeNomad, 50, func(in *PersonalityInput) bool {
			return dappInteractions(in.TopDapps, entity.BridgeContracts) >= 5
		}},
		{entity.ArchetypeBridgeNomad, 30, func(in *PersonalityInput) bool {
			return dappInteractions(in.TopDapps, entity.BridgeContracts) >= 10
		}},

		// Gas wizard needs active history, not just one cheap tx.
		{entity.ArchetypeGasWizard, 40, func(in *PersonalityInput) bool {
			return parseEth(in.AvgGasPerTxEth) < 0.0005 && in.TotalTransactions > 10
		}},
		{entity.ArchetypeGasWizard, 30, func(in *PersonalityInput) bool {
			return parseEth(in.AvgGasPerTxEth) < 0.0001 && in.TotalTransactions > 20
		}},

		{entity.ArchetypeMemeLord, 60, func(in *PersonalityInput) bool { return memeTokenCount(in.TopTokens) >= 3 }},
		{entity.ArchetypeMemeLord, 30, func(in *PersonalityInput) bool { return memeTokenCount(in.TopTokens) >= 1 }},

		{entity.ArchetypeEarlyAdopter, 40, func(in *PersonalityInput) bool { return activeBefore(in.FirstTxDate, earlyAdopterCutoff) }},
		{entity.ArchetypeEarlyAdopter, 20, func(in *PersonalityInput) bool { return activeBefore(in.FirstTxDate, earlyAdopterBonus) }},

		// Pre-2024 activity outranks every other archetype.
		{entity.ArchetypeOG, 150, func(in *PersonalityInput) bool { return activeBefore(in.FirstTxDate, ogCutoff) }},
		{entity.ArchetypeOG, 50, func(in *PersonalityInput) bool { return activeBefore(in.FirstTxDate, ogBonus) }},

		{entity.ArchetypeWhale, 60, func(in *PersonalityInput) bool { return parseEth(in.TotalValueSentEth) > 10 }},
		{entity.ArchetypeWhale, 20, func(in *PersonalityInput) bool { return parseEth(in.TotalValueSentEth) > 1 }},

		{entity.ArchetypeSocialButterfly, 60, func(in *PersonalityInput) bool { return socialInteractions(in.TopDapps) >= 10 }},
		{entity.ArchetypeSocialButterfly, 30, func(in *PersonalityInput) bool { return socialInteractions(in.TopDapps) >= 5 }},

		{entity.ArchetypeDiamondHands, 50, func(in *PersonalityInput) bool {
			return len(in.TopTokens) <= 5 && in.TotalTransactions > 50
		}},

		{entity.ArchetypeExplorer, 40, func(in *PersonalityInput) bool { return in.UniqueContractsInteracted > 10 }},
		{entity.ArchetypeExplorer, 40, func(in *PersonalityInput) bool { return in.UniqueContractsInteracted > 30 }},
		{entity.ArchetypeExplorer, 30, func(in *PersonalityInput) bool { return in.UniqueContractsInteracted > 50 }},

		{entity.ArchetypePowerUser, 100, func(in *PersonalityInput) bool { return in.TotalTransactions >= 1000 }},
		{entity.ArchetypePowerUser, 50, func(in *PersonalityInput) bool { return in.TotalTransactions >= 500 }},
		{entity.ArchetypePowerUser, 30, func(in *PersonalityInput) bool { return in.TotalTransactions >= 100 }},
	}
}

// Classify scores every archetype and returns the winner. When all scores
// are zero, or the maximum is tied, the earliest catalogue entry at the
// maximum wins; the all-zero default is the explorer archetype.
func (c *PersonalityClassifier) Classify(in *PersonalityInput) entity.Personality {
	scores := make(map[entity.Archetype]int, len(entity.ArchetypeCatalogue))
	for _, rule := range c.rules {
		if rule.when(in) {
			scores[rule.archetype] += rule.points
		}
	}

	top := entity.ArchetypeExplorer
	maxScore := 0
	for _, a := range entity.ArchetypeCatalogue {
		if scores[a] > maxScore {
			maxScore = scores[a]
			top = a
		}
	}

	return entity.PersonalityFor(top)
}

// Milestones evaluates the fixed badge list. Each predicate is independent.
func (c *PersonalityClassifier) Milestones(in *MilestoneInput) []entity.Milestone {
	return []entity.Milestone{
		{
			ID:          "century_club",
			Title:       "Century Club",
			Description: "100 transactions on Base",
			Emoji:       "Award",
			Achieved:    in.TotalTransactions >= 100,
		},
		{
			ID:          "first_mint",
			Title:       "First Mint",
			Description: "Minted your first NFT",
			Emoji:       "Paintbrush",
			Achieved:    in.NFTsMinted >= 1,
		},
		{
			ID:          "whale_watch",
			Title:       "Whale Watch",
			Description: "Moved 10+ ETH on Base",
			Emoji:       "Anchor",
			Achieved:    parseEth(in.TotalValueSentEth) >= 10,
		},
		{
			ID:          "early_bird",
			Title:       "Early Bird",
			Description: "Started before June 2025",
			Emoji:       "Sunrise",
			Achieved:    activeBefore(in.FirstTxDate, earlyAdopterCutoff),
		},
		{
			ID:          "protocol_explorer",
			Title:       "Protocol Explorer",
			Description: "Interacted with 20+ protocols",
			Emoji:       "Compass",
			Achieved:    in.UniqueContractsInteracted >= 20,
		},
		{
			ID:          "power_user",
			Title:       "Power User",
			Description: "10+ days with 5+ transactions",
			Emoji:       "Zap",
			Achieved:    in.BusyDaysCount >= 10,
		},
	}
}

// dappInteractions sums interaction counts of top-dApp entries whose address
// appears in the given set.
func dappInteractions(dapps []entity.DappInteraction, addresses []string) int {
	sum := 0
	for _, d := range dapps {
		addr := entity.NormalizeAddress(d.Address)
		for _, known := range addresses {
			if addr != "" && addr == known {
				sum += d.Count
				break
			}
		}
	}
	return sum
}

// socialInteractions counts activity on social protocols, matching by
// contract address or by well-known protocol names from the enriched feed.
func socialInteractions(dapps []entity.DappInteraction) int {
	sum := 0
	for _, d := range dapps {
		addr := entity.NormalizeAddress(d.Address)
		name := strings.ToLower(d.Name)
		matched := false
		for _, known := range entity.SocialContracts {
			if addr != "" && addr == known {
				matched = true
				break
			}
		}
		if !matched && (strings.Contains(name, "friend") || strings.Contains(name, "farcaster")) {
			matched = true
		}
		if matched {
			sum += d.Count
		}
	}
	return sum
}

func memeTokenCount(tokens []entity.CollectionStat) int {
	count := 0
	for _, t := range tokens {
		symbol := strings.ToLower(t.Symbol)
		name := strings.ToLower(t.Name)
		for _, keyword := range entity.MemeTokenKeywords {
			if strings.Contains(symbol, keyword) || strings.Contains(name, keyword) {
				count++
				break
			}
		}
	}
	return count
}

func activeBefore(first time.Time, cutoff time.Time) bool {
	return !first.IsZero() && first.Before(cutoff)
}

func parseEth(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
