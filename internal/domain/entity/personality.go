package entity

// Archetype identifies one personality from the closed catalogue.
type Archetype string

const (
	ArchetypeBuilder         Archetype = "builder"
	ArchetypeDeFiDegen       Archetype = "defi_degen"
	ArchetypeNFTCollector    Archetype = "nft_collector"
	ArchetypeBridgeNomad     Archetype = "bridge_nomad"
	ArchetypeGasWizard       Archetype = "gas_wizard"
	ArchetypeMemeLord        Archetype = "meme_lord"
	ArchetypeEarlyAdopter    Archetype = "early_adopter"
	ArchetypeWhale           Archetype = "whale"
	ArchetypeSocialButterfly Archetype = "social_butterfly"
	ArchetypeDiamondHands    Archetype = "diamond_hands"
	ArchetypeExplorer        Archetype = "explorer"
	ArchetypePowerUser       Archetype = "power_user"
	ArchetypeOG              Archetype = "og"
)

// ArchetypeCatalogue lists every archetype in its canonical order. Selection
// iterates this slice, so score ties resolve deterministically by catalogue
// position instead of map iteration order.
var ArchetypeCatalogue = []Archetype{
	ArchetypeBuilder,
	ArchetypeDeFiDegen,
	ArchetypeNFTCollector,
	ArchetypeBridgeNomad,
	ArchetypeGasWizard,
	ArchetypeMemeLord,
	ArchetypeEarlyAdopter,
	ArchetypeWhale,
	ArchetypeSocialButterfly,
	ArchetypeDiamondHands,
	ArchetypeExplorer,
	ArchetypePowerUser,
	ArchetypeOG,
}

// Personality is the selected archetype with its display metadata.
type Personality struct {
	Type        Archetype `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	Color       string    `json:"color"`
}

var personalityMeta = map[Archetype]Personality{
	ArchetypeBuilder: {
		Title:       "The Builder",
		Description: "You shipped on Base. Contract deployer, protocol creator. Legendary.",
		Emoji:       "Hammer",
		Color:       "#FF6B35",
	},
	ArchetypeDeFiDegen: {
		Title:       "DeFi Degen",
		Description: "You live for the swap. DEXes are your second home.",
		Emoji:       "TrendingUp",
		Color:       "#00D395",
	},
	ArchetypeNFTCollector: {
		Title:       "NFT Collector",
		Description: "Your wallet is a gallery. You collect art like breathing.",
		Emoji:       "Image",
		Color:       "#FF6B6B",
	},
	ArchetypeBridgeNomad: {
		Title:       "Bridge Nomad",
		Description: "Chains can't hold you. You roam freely across networks.",
		Emoji:       "MoveHorizontal",
		Color:       "#9B59B6",
	},
	ArchetypeGasWizard: {
		Title:       "Gas Wizard",
		Description: "You time your txs perfectly. Efficiency is your superpower.",
		Emoji:       "Zap",
		Color:       "#F39C12",
	},
	ArchetypeMemeLord: {
		Title:       "Meme Lord",
		Description: "DEGEN, BRETT, TOSHI — you ride every wave.",
		Emoji:       "Laugh",
		Color:       "#2ECC71",
	},
	ArchetypeEarlyAdopter: {
		Title:       "Early Adopter",
		Description: "You were here before it was cool. OG status earned.",
		Emoji:       "Sunrise",
		Color:       "#3498DB",
	},
	ArchetypeWhale: {
		Title:       "Whale Watcher",
		Description: "Big moves, big volume. The chain notices when you swim.",
		Emoji:       "Anchor",
		Color:       "#1ABC9C",
	},
	ArchetypeSocialButterfly: {
		Title:       "Social Butterfly",
		Description: "Farcaster, friend.tech — you connect communities.",
		Emoji:       "MessagesSquare",
		Color:       "#E91E63",
	},
	ArchetypeDiamondHands: {
		Title:       "Diamond Hands",
		Description: "Few tokens, many holds. You don't panic sell.",
		Emoji:       "Gem",
		Color:       "#00BCD4",
	},
	ArchetypeExplorer: {
		Title:       "Base Explorer",
		Description: "You try everything. Curious mind, diverse portfolio.",
		Emoji:       "Compass",
		Color:       "#0052FF",
	},
	ArchetypePowerUser: {
		Title:       "Power User",
		Description: "1000+ transactions. You live onchain. Base is home.",
		Emoji:       "Trophy",
		Color:       "#FFD700",
	},
	ArchetypeOG: {
		Title:       "OG",
		Description: "You were on Base before 2024. Ancient wisdom, early vibes.",
		Emoji:       "Crown",
		Color:       "#4169E1",
	},
}

// PersonalityFor returns the display metadata for an archetype with the Type
// field filled in.
func PersonalityFor(a Archetype) Personality {
	p := personalityMeta[a]
	p.Type = a
	return p
}

// Milestone is one achievement badge evaluated from aggregated facts.
type Milestone struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Emoji        string `json:"emoji"`
	Achieved     bool   `json:"achieved"`
	AchievedDate string `json:"achievedDate,omitempty"`
}
