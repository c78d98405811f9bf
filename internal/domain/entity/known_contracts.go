package entity

import (
	"fmt"
	"strings"
)

// ZeroAddress is the mint/burn counterpart address.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// AppMembershipNFT is the collection minted when a user registers for the
// companion app. Receiving it marks the join date; beta holders count as
// early adopters.
const AppMembershipNFT = "0xe3eb165c9ed6d6d87a59c410c8f30babac44fefd"

// NormalizeAddress lower-cases an address for map lookups and comparisons.
// Every address comparison in the codebase goes through this one helper.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ShortAddress renders an address as a truncated display string for unknown
// contracts, e.g. "0x4752...ad24".
func ShortAddress(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return fmt.Sprintf("%s...%s", addr[:6], addr[len(addr)-4:])
}

// KnownDapps maps well-known contract addresses (lower-cased) to display
// names. Used as the fallback naming source when the enriched feed has no
// dApp ranking for an address.
var KnownDapps = map[string]string{
	// DEXes
	"0x4752ba5dbc23f44d87826276bf6fd6b1c372ad24": "Uniswap",
	"0x2626664c2603336e57b271c5c0b26f421741e481": "Uniswap V3",
	"0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad": "Uniswap Universal Router",
	"0xec7be89e9d109e7e3fec59c222cf297125fefda2": "Uniswap V3 Factory",
	"0xcf77a3ba9a5ca399b7c97c74d54e5b1beb874e43": "Aerodrome",
	"0x940181a94a35a4569e4529a3cdf79ca2d8f85cb9": "Aerodrome Router",
	"0x420dd381b31aef6683db6b902084cb0ffece40da": "Aerodrome Voter",
	"0x1111111254fb6c44bac0bed2854e76f90643097d": "1inch",
	"0x111111125421ca6dc452d289314280a0f8842a65": "1inch V6",
	"0x6131b5fae19ea4f9d964eac0408e4408b66337b5": "Kyberswap",
	"0xdef1c0ded9bec7f1a1670819833240f027b25eff": "0x Protocol",
	"0x9c12939390052919af3155f41bf4160fd3666a6f": "Maverick",
	"0x327df1e6de05895d2ab08513aadd9313fe505d86": "BaseSwap",
	"0xc1e624c810d297fd70ef53b0e08f44fabe468591": "RocketSwap",
	"0x8c1a3cf8f83074169fe5d7ad50b978e1cd6b37c7": "SwapBased",
	"0x198ef79f1f515f02dfe9e3115ed9fc07183f02fc": "Odos",

	// Tokens
	"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913": "USDC",
	"0x4200000000000000000000000000000000000006": "WETH",
	"0x50c5725949a6f0c72e6c4a641f24049a917db0cb": "DAI",
	"0xd9aaec86b65d86f6a7b5b1b0c42ffa531710b6ca": "USDbC",
	"0x2ae3f1ec7f1f5012cfeab0185bfc7aa3cf0dec22": "cbETH",
	"0xc1cba3fcea344f92d9239c08c0568f6f2f0ee452": "wstETH",
	"0xb6fe221fe9eef5aba221c348ba20a1bf5e73624c": "rETH",
	"0x0578d8a44db98b23bf096a382e016e29a5ce0ffe": "HIGHER",
	"0x532f27101965dd16442e59d40670faf5ebb142e4": "BRETT",
	"0x4ed4e862860bed51a9570b96d89af5e1b0efefed": "DEGEN",
	"0xac1bd2486aaf3b5c0fc3fd868558b082a531b2b4": "TOSHI",

	// Lending
	"0x3e7ef8f50246f725885102e8238cbba33f276747": "Aave",
	"0xa238dd80c259a72e81d7e4664a9801593f98d1c5": "Aave Pool",
	"0x46e6b214b524310239732d51387075e0e70970bf": "Moonwell",
	"0xfbb21d0380bee3312b33c4353c8936a0f13ef26c": "Compound",
	"0x9c4ec768c28520b50860ea7a15bd7213a9ff58bf": "Seamless",

	// NFT / Social
	"0xec8e5342b19977b4ef8892e02d8dbafc80bd1f0":  "friend.tech",
	"0xcf205808ed36593aa40a44f10c7f7c2f67d4a4d4": "friend.tech V2",
	"0x7777777f279eba3d3ad8f4e708545291a6fdba8b": "Zora",
	"0x777777c338d93e2c7adf08d102d45ca7cc4ed021": "Zora Rewards",
	"0x9a26f5433671751c3276a065f57e5a02d2817973": "Basecamp",
	"0x1d6b183bd47f914f9f1d3208edcf8befd7f84e63": "Farcaster",
	"0xd4498134211baaf44b4e8a80f4f3e5b4921ff48c": "Mint.fun",
	"0xe3eb165c9ed6d6d87a59c410c8f30babac44fefd": "Base App",

	// Bridges
	"0x49048044d57e1c92a77f79988d21fa8faf74e97e": "Base Bridge",
	"0x3154cf16ccdb4c6d922629664174b904d80f2c35": "Base Bridge L1",
	"0x866e82a600a1414e583f7f13623f1ac5d58b0afa": "Stargate",
	"0x50b6ebc2103bfec165949cc946d739d5650d7ae4": "Hop Protocol",
	"0xaf54be5b6eec24d6bfacf1cce4eaf680a8239398": "Across",

	// Yield / DeFi
	"0x78a087d713be963bf307b18f2ff8122ef9a63ae9": "Beefy",
	"0x6b8d3b1a05a73f7f4fb1eff3c3dd0a5d8b1f3f8b": "Yearn",
	"0xb125e6687d4313864e53df431d5425969c15eb2f": "Extra Finance",
	"0x9ba021b0a9b958b5e75ce9f6dff97c7ee52cb3e6": "Socket",

	// Gaming / Other
	"0x8a8f0a43e8fc8d715c00cff1c8fdd9decd8f0aa8": "Parallel",
	"0x52629961f71c1c2564c5aa22372cb1b9fa9ed39e": "Layer3",
	"0x1efab7a0dcfbb0b7d9b7f7a7fb4dcd3d28c1f3b2": "Galxe",
}

// MemeTokenKeywords match meme tokens by substring against lower-cased token
// names and symbols.
var MemeTokenKeywords = []string{
	"degen", "brett", "toshi", "normie", "mochi", "crash",
	"doginme", "keycat", "basenji", "higher",
}

// BridgeContracts are the canonical bridge entry points (lower-cased).
var BridgeContracts = []string{
	"0x4200000000000000000000000000000000000010", // L2 standard bridge
	"0x49048044d57e1c92a77f79988d21fa8faf74e97e",
}

// DeFiContracts are the DEX routers counted toward swap activity.
var DeFiContracts = []string{
	"0x4752ba5dbc23f44d87826276bf6fd6b1c372ad24",
	"0x2626664c2603336e57b271c5c0b26f421741e481",
	"0xcf77a3ba9a5ca399b7c97c74d54e5b1beb874e43",
	"0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad",
	"0x1111111254fb6c44bac0bed2854e76f90643097d",
}

// SocialContracts are social protocol entry points.
var SocialContracts = []string{
	"0xec8e5342b19977b4ef8892e02d8dbafc80bd1f0",
}
