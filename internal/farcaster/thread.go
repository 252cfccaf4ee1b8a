package farcaster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// GetThread implements social.Provider.  threadID may be a cast hash (with or
// without the 0x prefix) or a full Warpcast URL.  On total failure it returns
// a renderable thread whose root text carries the error, never an error
// value.  Replies are flattened breadth-first to one level of nesting.
func (p *Provider) GetThread(ctx context.Context, threadID string, opt social.ThreadOptions) (social.Thread, error) {
	if !p.hasKey() {
		return social.ErrorThread(PlatformName, noKeyMsg("get Farcaster thread")), nil
	}

	if err := ctx.Err(); err != nil {
		return errThread(threadID, fmt.Sprintf("Error fetching farcaster thread '%s': %v", threadID, err)), nil
	}

	cast := p.lookupRoot(ctx, threadID)
	if cast == nil {
		return errThread(threadID, "Thread not found: "+threadID), nil
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = defSearchLimit
	}
	replies := p.fetchReplies(ctx, cast.Hash, limit)

	return social.Thread{
		ID:       threadID,
		Content:  p.castToContent(*cast),
		Replies:  replies,
		Platform: PlatformName,
	}, nil
}

// lookupRoot tries to resolve the root cast, first with the identifier as
// given (normalizing bare hashes to the 0x form), then with a constructed
// Warpcast URL as a fallback.  Lookup failures are not fatal, they are
// logged and reported as an absent cast.
func (p *Provider) lookupRoot(ctx context.Context, threadID string) *neynar.Cast {
	identifier := threadID
	kind := neynar.ByHash
	if strings.HasPrefix(threadID, "http") {
		kind = neynar.ByURL
	} else if !strings.HasPrefix(threadID, "0x") {
		identifier = "0x" + threadID
	}

	resp, err := p.client.LookupCast(ctx, identifier, kind)
	if err == nil && resp.Cast.Hash != "" {
		return &resp.Cast
	}
	if err != nil {
		p.lg.DebugContext(ctx, "direct cast lookup failed, trying constructed URL", "thread", threadID, "error", err)
	}

	constructed := "https://warpcast.com/rish/" + strings.TrimPrefix(threadID, "0x")
	resp, err = p.client.LookupCast(ctx, constructed, neynar.ByURL)
	if err == nil && resp.Cast.Hash != "" {
		return &resp.Cast
	}
	if err != nil {
		p.lg.DebugContext(ctx, "constructed URL lookup failed", "thread", threadID, "error", err)
	}
	return nil
}

// fetchReplies retrieves the conversation for hash and flattens the direct
// replies plus one nested level.  Any failure yields an empty, non-nil slice.
func (p *Provider) fetchReplies(ctx context.Context, hash string, limit int) []social.Content {
	replies := []social.Content{}
	resp, err := p.client.Conversation(ctx, hash, neynar.ByHash, limit)
	if err != nil {
		p.lg.WarnContext(ctx, "conversation fetch failed", "hash", hash, "error", err)
		return replies
	}
	for _, reply := range resp.Conversation.Cast.DirectReplies {
		replies = append(replies, p.castToContent(reply))
		for _, nested := range reply.DirectReplies {
			replies = append(replies, p.castToContent(nested))
		}
	}
	return replies
}

// errThread builds the renderable thread returned when the root cast cannot
// be fetched.
func errThread(threadID, msg string) social.Thread {
	return social.Thread{
		ID: threadID,
		Content: social.Content{
			ID:             threadID,
			Text:           msg,
			AuthorID:       "unknown",
			AuthorName:     "Unknown Author",
			AuthorUsername: "unknown",
			CreatedAt:      time.Now().UTC(),
			Platform:       PlatformName,
			Metadata:       map[string]any{},
		},
		Replies:  []social.Content{},
		Platform: PlatformName,
	}
}
