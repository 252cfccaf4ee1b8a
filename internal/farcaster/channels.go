package farcaster

// In this file: channel search, the derived focus areas and the deterministic
// significance classification.

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
	"golang.org/x/sync/errgroup"
)

// SearchChannels implements social.ChannelSearcher.
func (p *Provider) SearchChannels(ctx context.Context, query string, opt social.ChannelSearchOptions) (social.ChannelPage, error) {
	if !p.hasKey() {
		return social.ChannelPage{}, fmt.Errorf("search Farcaster channels: %w", social.ErrNoCredential)
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defSearchLimit
	}
	resp, err := p.client.SearchChannels(ctx, query, neynar.ChannelSearchReq{
		Limit:           limit,
		Cursor:          opt.Cursor,
		IncludeChannels: opt.IncludeChannels,
	})
	if err != nil {
		return social.ChannelPage{}, fmt.Errorf("search channels %q: %w", query, err)
	}
	page := social.ChannelPage{
		Channels:   make([]social.Channel, 0, len(resp.Channels)),
		NextCursor: resp.Next.Cursor,
	}
	for _, ch := range resp.Channels {
		page.Channels = append(page.Channels, normalizeChannel(ch))
	}
	return page, nil
}

// SearchBulkChannels implements social.ChannelSearcher.  One upstream search
// is issued per query in parallel.  A failed query is recorded as an empty
// page for that query only, it never fails sibling queries or the aggregate
// call.
func (p *Provider) SearchBulkChannels(ctx context.Context, queries []string, opt social.ChannelSearchOptions) (map[string]social.ChannelPage, error) {
	if !p.hasKey() {
		return nil, fmt.Errorf("search Farcaster channels: %w", social.ErrNoCredential)
	}
	var (
		mu      sync.Mutex
		results = make(map[string]social.ChannelPage, len(queries))
	)
	eg, ctx := errgroup.WithContext(ctx)
	for _, query := range queries {
		eg.Go(func() error {
			page, err := p.SearchChannels(ctx, query, opt)
			if err != nil {
				p.lg.WarnContext(ctx, "bulk channel search query failed", "query", query, "error", err)
				page = social.ChannelPage{Channels: []social.Channel{}}
			}
			mu.Lock()
			results[query] = page
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// normalizeChannel maps an upstream channel record, deriving focus areas from
// the description and the significance classification from the follower
// count and record completeness.
func normalizeChannel(ch neynar.Channel) social.Channel {
	createdAt := time.Unix(ch.CreatedAt, 0).UTC()
	updatedAt := createdAt
	if ch.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, ch.UpdatedAt); err == nil {
			updatedAt = t
		}
	}
	var leadID string
	if ch.LeadFID != 0 {
		leadID = strconv.FormatInt(ch.LeadFID, 10)
	}
	return social.Channel{
		ID:            ch.ID,
		Name:          ch.Name,
		Description:   ch.Description,
		FollowerCount: ch.FollowerCount,
		ParentURL:     ch.ParentURL,
		ImageURL:      ch.ImageURL,
		LeadID:        leadID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		FocusAreas:    extractFocusAreas(ch.Description),
		Stats: social.CommunityStats{
			Followers:   ch.FollowerCount,
			Created:     createdAt,
			LastUpdated: updatedAt,
		},
		Significance: channelSignificance(ch),
	}
}

var (
	topicSplitRe  = regexp.MustCompile(`[.,;]|\band\b|\bor\b`)
	topicStopword = map[string]bool{
		"the": true, "a": true, "an": true, "in": true, "on": true,
		"at": true, "to": true, "for": true, "of": true, "with": true,
	}
)

// extractFocusAreas derives topic strings from a channel description by
// splitting on punctuation and conjunctions, dropping stopwords and
// capitalizing each remaining fragment.
func extractFocusAreas(description string) []string {
	if description == "" {
		return []string{}
	}
	areas := []string{}
	for _, part := range topicSplitRe.Split(strings.ToLower(description), -1) {
		topic := strings.TrimSpace(part)
		if topic == "" || topicStopword[topic] {
			continue
		}
		areas = append(areas, strings.ToUpper(topic[:1])+topic[1:])
	}
	return areas
}

// channelSignificance classifies a channel.  The name check and the follower
// thresholds are ordered; the first match wins.
func channelSignificance(ch neynar.Channel) string {
	switch {
	case strings.Contains(strings.ToLower(ch.Name), "official"):
		return "Official channel for platform/project updates and announcements"
	case ch.FollowerCount > 10000:
		return "Major community hub with significant following"
	case ch.FollowerCount > 1000:
		return "Growing community with active engagement"
	case ch.Description != "" && ch.ImageURL != "":
		return "Well-maintained channel with regular updates"
	default:
		return "Emerging channel in development"
	}
}
