package farcaster

// In this file: trending topic derivation and the multi-provider trending
// feed.

import (
	"context"
	"regexp"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// fallbackTopics is returned when no hashtags can be derived from the
// trending sample or when the upstream call fails.
var fallbackTopics = []string{"farcaster", "web3", "crypto", "ai"}

var hashtagRe = regexp.MustCompile(`#[\w-]+`)

// GetTrendingTopics implements social.Provider.  It samples the global
// trending feed and derives topics from the hashtags in the cast texts,
// preserving first-seen order.  It degrades to fallbackTopics on any failure
// or when the sample contains no hashtags.
func (p *Provider) GetTrendingTopics(ctx context.Context, opt social.TrendingOptions) ([]string, error) {
	if !p.hasKey() {
		return []string{"Error: No API key provided. Please set NEYNAR_API_KEY in your .env file."}, nil
	}
	resp, err := p.client.Feed(ctx, topicSampleSize)
	if err != nil {
		p.lg.WarnContext(ctx, "trending feed fetch failed, using fallback topics", "error", err)
		return fallbackTopics, nil
	}

	seen := make(map[string]bool)
	var topics []string
	for _, cast := range resp.Casts {
		for _, tag := range hashtagRe.FindAllString(cast.Text, -1) {
			topic := tag[1:]
			if !seen[topic] {
				seen[topic] = true
				topics = append(topics, topic)
			}
		}
	}
	if len(topics) == 0 {
		return fallbackTopics, nil
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = defTopicLimit
	}
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics, nil
}

// GetTrendingFeed implements social.TrendingFeeder.  The default neynar
// ranking goes through the global trending filter feed; alternative rankings
// (openrank, mbd) go through the trending endpoint with the time window and
// optional filter metadata passed through.  Truncation to the requested limit
// happens after normalization.  Upstream failures degrade to an empty slice.
func (p *Provider) GetTrendingFeed(ctx context.Context, opt social.TrendingOptions) ([]social.Content, error) {
	if !p.hasKey() {
		return []social.Content{social.ErrorContent(PlatformName, noKeyMsg("get Farcaster trending feed"))}, nil
	}
	provider := opt.Provider
	if provider == "" {
		provider = social.FeedNeynar
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defSearchLimit
	}

	var casts []neynar.Cast
	if provider == social.FeedNeynar {
		resp, err := p.client.Feed(ctx, limit)
		if err != nil {
			p.lg.WarnContext(ctx, "trending feed fetch failed", "error", err)
			return []social.Content{}, nil
		}
		casts = resp.Casts
	} else {
		window := opt.TimeWindow
		if window == "" {
			window = social.Window24h
		}
		var filters map[string]any
		if provider == social.FeedMBD && len(opt.Metadata) > 0 {
			filters = make(map[string]any, len(opt.Metadata)+2)
			for k, v := range opt.Metadata {
				filters[k] = v
			}
			if v, ok := opt.Metadata["startTimestamp"]; ok {
				filters["start_timestamp"] = v
			}
			if v, ok := opt.Metadata["endTimestamp"]; ok {
				filters["end_timestamp"] = v
			}
		}
		var err error
		casts, err = p.client.TrendingFeed(ctx, neynar.TrendingFeedOpts{
			Limit:      limit,
			Provider:   string(provider),
			TimeWindow: string(window),
			Filters:    filters,
		})
		if err != nil {
			p.lg.WarnContext(ctx, "trending feed fetch failed", "provider", provider, "error", err)
			return []social.Content{}, nil
		}
	}

	out := p.castsToContent(casts)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
