package reputation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"base-wrapped-api/internal/domain/entity"
	"base-wrapped-api/internal/domain/repository"
	"base-wrapped-api/internal/infrastructure/config"
	"base-wrapped-api/internal/infrastructure/logger"

	"go.uber.org/zap"
)

const topCredentialLimit = 5

// Client implements ReputationRepository against a Talent-style identity
// API. Each sub-resource fetch is independently best-effort.
type Client struct {
	baseURL    string
	apiKey     string
	scorerSlug string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a reputation client from configuration.
func NewClient(cfg *config.Config, log *logger.Logger) repository.ReputationRepository {
	return &Client{
		baseURL:    cfg.Reputation.BaseURL,
		apiKey:     cfg.Reputation.APIKey,
		scorerSlug: cfg.Reputation.ScorerSlug,
		httpClient: &http.Client{Timeout: cfg.Reputation.Timeout},
		logger:     log.WithComponent("reputation-client"),
	}
}

// fetch GETs one endpoint and decodes into out. Returns false on any
// failure; the caller leaves the corresponding field empty.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values, out any) bool {
	if c.apiKey == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Warn("Failed to build reputation request", zap.String("endpoint", endpoint), zap.Error(err))
		return false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Reputation request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Reputation provider returned non-OK status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode reputation response", zap.String("endpoint", endpoint), zap.Error(err))
		return false
	}
	return true
}

type scoreResponse struct {
	Score struct {
		Score int `json:"score"`
	} `json:"score"`
}

type credentialsResponse struct {
	Credentials []entity.Credential `json:"credentials"`
}

type profileResponse struct {
	Profile struct {
		DisplayName    string `json:"display_name"`
		Bio            string `json:"bio"`
		ImageURL       string `json:"image_url"`
		Verified       bool   `json:"verified"`
		HumanCheckmark bool   `json:"human_checkmark"`
	} `json:"profile"`
}

type socialsResponse struct {
	Socials []struct {
		Source    string `json:"source"`
		Name      string `json:"name"`
		Followers int    `json:"followers"`
	} `json:"socials"`
}

type accountsResponse struct {
	Accounts []struct {
		Source   string `json:"source"`
		Verified bool   `json:"verified"`
	} `json:"accounts"`
}

type projectsResponse struct {
	Projects []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		URL         string `json:"url"`
		LogoURL     string `json:"logo_url"`
		Role        string `json:"role"`
	} `json:"projects"`
}

// FetchBuilderData fans out the six sub-resource fetches concurrently and
// assembles whatever subset succeeded.
func (c *Client) FetchBuilderData(ctx context.Context, address string) *entity.BuilderData {
	idParams := url.Values{"id": {address}}
	scoredParams := url.Values{"id": {address}, "scorer_slug": {c.scorerSlug}}

	var (
		scoreResp scoreResponse
		credsResp credentialsResponse
		profResp  profileResponse
		socResp   socialsResponse
		acctResp  accountsResponse
		projResp  projectsResponse

		scoreOK, profileOK bool
	)

	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); scoreOK = c.fetch(ctx, "/score", scoredParams, &scoreResp) }()
	go func() { defer wg.Done(); c.fetch(ctx, "/credentials", scoredParams, &credsResp) }()
	go func() { defer wg.Done(); profileOK = c.fetch(ctx, "/profile", idParams, &profResp) }()
	go func() { defer wg.Done(); c.fetch(ctx, "/socials", idParams, &socResp) }()
	go func() { defer wg.Done(); c.fetch(ctx, "/accounts", idParams, &acctResp) }()
	go func() { defer wg.Done(); c.fetch(ctx, "/projects", idParams, &projResp) }()
	wg.Wait()

	data := &entity.BuilderData{
		Credentials:    credsResp.Credentials,
		Breakdown:      BuildBreakdown(credsResp.Credentials),
		TopCredentials: topCredentials(credsResp.Credentials),
	}

	if scoreOK {
		score := scoreResp.Score.Score
		data.Score = &score
	}

	if profileOK {
		data.Profile = &entity.TalentProfile{
			DisplayName:    profResp.Profile.DisplayName,
			Bio:            profResp.Profile.Bio,
			ImageURL:       profResp.Profile.ImageURL,
			Verified:       profResp.Profile.Verified,
			HumanCheckmark: profResp.Profile.HumanCheckmark,
		}
	}

	for _, social := range socResp.Socials {
		source := strings.ToLower(social.Source)
		if source == "" {
			source = strings.ToLower(social.Name)
		}
		account := &entity.SocialAccount{Username: social.Name, Followers: social.Followers}
		switch {
		case strings.Contains(source, "farcaster"):
			data.Socials.Farcaster = account
		case strings.Contains(source, "twitter"), strings.Contains(source, "x.com"):
			data.Socials.Twitter = account
		case strings.Contains(source, "github"):
			data.Socials.GitHub = account
		case strings.Contains(source, "lens"):
			data.Socials.Lens = account
		}
	}

	for _, acct := range acctResp.Accounts {
		data.Accounts = append(data.Accounts, entity.AccountRef{
			Source:   acct.Source,
			Verified: acct.Verified,
		})
	}

	for _, proj := range projResp.Projects {
		data.Projects = append(data.Projects, entity.ProjectRef{
			Name:        proj.Name,
			Description: proj.Description,
			URL:         proj.URL,
			LogoURL:     proj.LogoURL,
			Role:        proj.Role,
		})
	}

	return data
}

// BuildBreakdown attributes credential points to the fixed score categories.
// Matching is keyword-based over the lower-cased category and slug; the
// first matching category wins and anything unmatched lands in Other.
func BuildBreakdown(credentials []entity.Credential) entity.ScoreBreakdown {
	var breakdown entity.ScoreBreakdown

	for _, cred := range credentials {
		category := strings.ToLower(cred.Category)
		slug := strings.ToLower(cred.Slug)

		switch {
		case strings.Contains(category, "github") || strings.Contains(slug, "github"):
			breakdown.GitHub += cred.Points
		case strings.Contains(category, "twitter") || strings.Contains(category, "x_") || strings.Contains(slug, "twitter"):
			breakdown.Twitter += cred.Points
		case strings.Contains(category, "onchain") || strings.Contains(category, "wallet") || strings.Contains(slug, "transaction"):
			breakdown.Onchain += cred.Points
		case strings.Contains(category, "farcaster") || strings.Contains(slug, "farcaster"):
			breakdown.Farcaster += cred.Points
		case strings.Contains(category, "identity") || strings.Contains(slug, "passport") || strings.Contains(slug, "verified"):
			breakdown.Identity += cred.Points
		default:
			breakdown.Other += cred.Points
		}
	}

	return breakdown
}

// topCredentials ranks positive-point credentials descending and keeps the
// top five.
func topCredentials(credentials []entity.Credential) []entity.CredentialRef {
	var positive []entity.Credential
	for _, cred := range credentials {
		if cred.Points > 0 {
			positive = append(positive, cred)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool { return positive[i].Points > positive[j].Points })
	if len(positive) > topCredentialLimit {
		positive = positive[:topCredentialLimit]
	}

	refs := make([]entity.CredentialRef, 0, len(positive))
	for _, cred := range positive {
		refs = append(refs, entity.CredentialRef{
			Name:     cred.Name,
			Category: cred.Category,
			Points:   cred.Points,
		})
	}
	return refs
}
