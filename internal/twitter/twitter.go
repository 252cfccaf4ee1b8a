// Package twitter is a placeholder Twitter provider.  It satisfies the
// social.Provider contract so the registry and capability surface stay
// platform-agnostic, but every operation returns an empty or sentinel value
// until a real upstream client is wired in.
package twitter

import (
	"context"
	"fmt"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// PlatformName is the platform tag for this provider.
const PlatformName = "twitter"

// Provider is the stub Twitter provider.  It implements only the mandatory
// capability set: Twitter has no channel or on-chain balance concept, so the
// optional interfaces are deliberately absent.
type Provider struct {
	apiKey string
}

var _ social.Provider = (*Provider)(nil)

// New creates the stub provider.  The credential is stored for the future
// real implementation; it does not change behaviour yet.
func New(apiKey string) *Provider {
	return &Provider{apiKey: apiKey}
}

func (p *Provider) Name() string     { return PlatformName }
func (p *Provider) Platform() string { return PlatformName }

// IsAvailable always reports false: there is no upstream client yet.
func (p *Provider) IsAvailable(ctx context.Context) bool { return false }

func (p *Provider) SearchContent(ctx context.Context, query string, opt social.SearchOptions) ([]social.Content, error) {
	return []social.Content{}, nil
}

func (p *Provider) GetUserProfile(ctx context.Context, userID string) (social.Profile, error) {
	return social.Profile{}, fmt.Errorf("twitter profile lookup: %w", social.ErrNotImplemented)
}

func (p *Provider) GetUserProfileByWalletAddress(ctx context.Context, address string) (social.Profile, error) {
	return social.UnsupportedProfile(PlatformName, "Twitter does not support wallet address lookup"), nil
}

func (p *Provider) GetUserContent(ctx context.Context, userID string, opt social.ContentOptions) ([]social.Content, error) {
	return []social.Content{}, nil
}

func (p *Provider) GetThread(ctx context.Context, threadID string, opt social.ThreadOptions) (social.Thread, error) {
	return social.Thread{
		ID: threadID,
		Content: social.Content{
			ID:       threadID,
			Text:     "Thread not found: " + threadID,
			AuthorID: "unknown",
			Platform: PlatformName,
		},
		Replies:  []social.Content{},
		Platform: PlatformName,
	}, nil
}

func (p *Provider) GetTrendingTopics(ctx context.Context, opt social.TrendingOptions) ([]string, error) {
	return []string{}, nil
}
