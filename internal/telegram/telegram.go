// Package telegram is a placeholder Telegram provider, mirroring the twitter
// stub: mandatory capability set only, every operation degrades to an empty
// or sentinel value.
package telegram

import (
	"context"
	"fmt"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// PlatformName is the platform tag for this provider.
const PlatformName = "telegram"

// Provider is the stub Telegram provider.
type Provider struct {
	botToken string
}

var _ social.Provider = (*Provider)(nil)

// New creates the stub provider.
func New(botToken string) *Provider {
	return &Provider{botToken: botToken}
}

func (p *Provider) Name() string     { return PlatformName }
func (p *Provider) Platform() string { return PlatformName }

// IsAvailable always reports false: there is no upstream client yet.
func (p *Provider) IsAvailable(ctx context.Context) bool { return false }

func (p *Provider) SearchContent(ctx context.Context, query string, opt social.SearchOptions) ([]social.Content, error) {
	return []social.Content{}, nil
}

func (p *Provider) GetUserProfile(ctx context.Context, userID string) (social.Profile, error) {
	return social.Profile{}, fmt.Errorf("telegram profile lookup: %w", social.ErrNotImplemented)
}

func (p *Provider) GetUserProfileByWalletAddress(ctx context.Context, address string) (social.Profile, error) {
	return social.UnsupportedProfile(PlatformName, "Telegram does not support wallet address lookup"), nil
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
