package farcaster

// In this file: content search, per-user content retrieval and the cast
// normalization shared by every cast-producing operation.

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// SearchContent implements social.Provider.  Queries of the form
// "from:<user>" are routed through user resolution and the per-user cast
// feed; everything else goes through generic cast search.  Upstream failures
// degrade to an empty slice.
func (p *Provider) SearchContent(ctx context.Context, query string, opt social.SearchOptions) ([]social.Content, error) {
	if !p.hasKey() {
		return []social.Content{social.ErrorContent(PlatformName, noKeyMsg("search Farcaster"))}, nil
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defSearchLimit
	}

	if username, ok := strings.CutPrefix(query, "from:"); ok {
		return p.searchByAuthor(ctx, strings.TrimSpace(username), limit), nil
	}

	p.lg.DebugContext(ctx, "searching farcaster", "query", query, "limit", limit)
	resp, err := p.client.SearchCasts(ctx, query, limit)
	if err != nil {
		p.lg.WarnContext(ctx, "cast search failed", "query", query, "error", err)
		return []social.Content{}, nil
	}
	return p.castsToContent(resp.Result.Casts), nil
}

// searchByAuthor resolves the author and fetches their casts.  A failed
// author resolution is not fatal to the search, it yields an empty result.
func (p *Provider) searchByAuthor(ctx context.Context, username string, limit int) []social.Content {
	fid, err := p.resolveFID(ctx, username)
	if err != nil {
		p.lg.WarnContext(ctx, "author lookup failed", "username", username, "error", err)
		return []social.Content{}
	}
	resp, err := p.client.CastsByFID(ctx, fid, limit, "")
	if err != nil {
		p.lg.WarnContext(ctx, "cast fetch failed", "fid", fid, "error", err)
		return []social.Content{}
	}
	return p.castsToContent(resp.Casts)
}

// GetUserContent implements social.Provider.  Resolution failure is an error;
// a failed cast fetch after a successful resolution degrades to an empty
// slice.
func (p *Provider) GetUserContent(ctx context.Context, userID string, opt social.ContentOptions) ([]social.Content, error) {
	if !p.hasKey() {
		return []social.Content{social.ErrorContent(PlatformName, noKeyMsg("get Farcaster user content"))}, nil
	}
	fid, err := p.resolveFID(ctx, userID)
	if err != nil {
		return nil, err
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defSearchLimit
	}
	resp, err := p.client.CastsByFID(ctx, fid, limit, opt.Cursor)
	if err != nil {
		p.lg.WarnContext(ctx, "user content fetch failed", "fid", fid, "error", err)
		return []social.Content{}, nil
	}
	return p.castsToContent(resp.Casts), nil
}

// castToContent normalizes one upstream cast.  Engagement counters default to
// zero, the author falls back to "unknown", and the canonical URL prefers the
// username short-hash form over the hash-only fallback.
func (p *Provider) castToContent(cast neynar.Cast) social.Content {
	authorID := "unknown"
	if cast.Author.FID != 0 {
		authorID = strconv.FormatInt(cast.Author.FID, 10)
	}
	authorName := cast.Author.DisplayName
	if authorName == "" {
		authorName = cast.Author.Username
	}
	if authorName == "" {
		authorName = "Unknown Author"
	}
	authorUsername := cast.Author.Username
	if authorUsername == "" {
		authorUsername = "unknown"
	}
	createdAt := cast.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	threadID := cast.ThreadHash
	if threadID == "" {
		threadID = cast.Hash
	}
	return social.Content{
		ID:             cast.Hash,
		Text:           cast.Text,
		AuthorID:       authorID,
		AuthorName:     authorName,
		AuthorUsername: authorUsername,
		CreatedAt:      createdAt,
		Platform:       PlatformName,
		ReplyToID:      cast.ParentHash,
		ThreadID:       threadID,
		Likes:          cast.Reactions.LikesCount,
		Reposts:        cast.Reactions.RecastsCount,
		Replies:        cast.Replies.Count,
		URL:            castURL(cast),
		Metadata: map[string]any{
			"embeds":   cast.Embeds,
			"mentions": cast.MentionedProfiles,
		},
	}
}

func (p *Provider) castsToContent(casts []neynar.Cast) []social.Content {
	out := make([]social.Content, 0, len(casts))
	for _, cast := range casts {
		out = append(out, p.castToContent(cast))
	}
	return out
}

// castURL builds the Warpcast link for a cast.  With a known author the short
// form https://warpcast.com/<username>/<hash prefix> is used, otherwise the
// hash-only ~/cast form.
func castURL(cast neynar.Cast) string {
	if cast.Author.Username != "" {
		h := cast.Hash
		if len(h) > 10 {
			h = h[:10]
		}
		return fmt.Sprintf("https://warpcast.com/%s/%s", cast.Author.Username, h)
	}
	return fmt.Sprintf("https://warpcast.com/~/cast/%s", cast.Hash)
}
