package entity

// Credential is one raw reputation credential from the identity provider.
type Credential struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"max_points"`
}

// ScoreBreakdown splits the builder score by credential category. Categories
// are fixed; anything unmatched lands in Other.
type ScoreBreakdown struct {
	GitHub    float64 `json:"github"`
	Twitter   float64 `json:"twitter"`
	Onchain   float64 `json:"onchain"`
	Farcaster float64 `json:"farcaster"`
	Identity  float64 `json:"identity"`
	Other     float64 `json:"other"`
}

// TalentProfile is the identity provider's profile record.
type TalentProfile struct {
	DisplayName    string `json:"displayName,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Verified       bool   `json:"verified"`
	HumanCheckmark bool   `json:"humanCheckmark"`
}

// SocialAccount is one linked social handle.
type SocialAccount struct {
	Username  string `json:"username"`
	Followers int    `json:"followers,omitempty"`
}

// SocialHandles groups the recognized social platforms.
type SocialHandles struct {
	Farcaster *SocialAccount `json:"farcaster,omitempty"`
	Twitter   *SocialAccount `json:"twitter,omitempty"`
	GitHub    *SocialAccount `json:"github,omitempty"`
	Lens      *SocialAccount `json:"lens,omitempty"`
}

// AccountRef is a linked external account as rendered in WrappedStats.
type AccountRef struct {
	Source   string `json:"source"`
	Verified bool   `json:"verified"`
}

// ProjectRef is an attributed project as rendered in WrappedStats.
type ProjectRef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Role        string `json:"role"`
}

// CredentialRef is a top credential as rendered in WrappedStats.
type CredentialRef struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Points   float64 `json:"points"`
}

// BuilderData is everything the reputation fetcher returns for one address.
// Every field is independently best-effort; a missing credential leaves it
// nil or empty rather than failing the whole fetch.
type BuilderData struct {
	Score          *int            `json:"score"`
	Breakdown      ScoreBreakdown  `json:"breakdown"`
	Profile        *TalentProfile  `json:"profile"`
	Socials        SocialHandles   `json:"socials"`
	Credentials    []Credential    `json:"credentials"`
	TopCredentials []CredentialRef `json:"topCredentials"`
	Accounts       []AccountRef    `json:"accounts"`
	Projects       []ProjectRef    `json:"projects"`
}
