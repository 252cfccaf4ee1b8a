package mcp

// In this file: plain-text renderings of registry results for LLM
// consumption.

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

const timeLayout = "2006-01-02 15:04:05 MST"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func formatSearchResults(results []social.Content, query, platform string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for query: %q on %s", query, platform)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Search Results for %q on %s:\n", query, platform)
	for i, r := range results {
		fmt.Fprintf(&b, "\n[%d] @%s (%s): %s\n", i+1, r.AuthorUsername, r.AuthorName, r.Text)
		fmt.Fprintf(&b, "    - Posted: %s\n", formatTime(r.CreatedAt))
		fmt.Fprintf(&b, "    - Engagement: %d likes, %d reposts, %d replies\n", r.Likes, r.Reposts, r.Replies)
		fmt.Fprintf(&b, "    - ID: %s\n", r.ID)
	}
	return b.String()
}

func formatProfile(p social.Profile) string {
	verified := "No"
	if p.Verified {
		verified = "Yes"
	}
	bio := p.Bio
	if bio == "" {
		bio = "No bio available"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "User Profile: @%s (%s)\n", p.Username, p.DisplayName)
	fmt.Fprintf(&b, "- Platform: %s\n", p.Platform)
	fmt.Fprintf(&b, "- Bio: %s\n", bio)
	fmt.Fprintf(&b, "- Followers: %s\n", humanize.Comma(int64(p.FollowerCount)))
	fmt.Fprintf(&b, "- Following: %s\n", humanize.Comma(int64(p.FollowingCount)))
	fmt.Fprintf(&b, "- Verified: %s\n", verified)
	fmt.Fprintf(&b, "- User ID: %s\n", p.ID)
	return b.String()
}

func formatUserContent(content []social.Content, platform string) string {
	if len(content) == 0 {
		return fmt.Sprintf("No content available for this user on %s.", platform)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Recent Content on %s:\n", platform)
	for i, item := range content {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, item.Text)
		fmt.Fprintf(&b, "    - Posted: %s\n", formatTime(item.CreatedAt))
		fmt.Fprintf(&b, "    - Engagement: %d likes, %d reposts, %d replies\n", item.Likes, item.Reposts, item.Replies)
		fmt.Fprintf(&b, "    - ID: %s\n", item.ID)
	}
	return b.String()
}

func formatThread(t social.Thread) string {
	root := t.Content
	var b strings.Builder
	fmt.Fprintf(&b, "Thread on %s:\n\n", t.Platform)
	fmt.Fprintf(&b, "Original Post by @%s (%s):\n%q\n", root.AuthorUsername, root.AuthorName, root.Text)
	fmt.Fprintf(&b, "- Posted: %s\n", formatTime(root.CreatedAt))
	fmt.Fprintf(&b, "- Engagement: %d likes, %d reposts, %d replies\n", root.Likes, root.Reposts, root.Replies)
	fmt.Fprintf(&b, "- ID: %s\n", root.ID)

	if len(t.Replies) == 0 {
		b.WriteString("\nNo replies to this post.\n")
		return b.String()
	}
	b.WriteString("\nReplies:\n")
	for i, r := range t.Replies {
		fmt.Fprintf(&b, "\n[%d] @%s (%s): %s\n", i+1, r.AuthorUsername, r.AuthorName, r.Text)
		fmt.Fprintf(&b, "    - Posted: %s\n", formatTime(r.CreatedAt))
		fmt.Fprintf(&b, "    - Engagement: %d likes, %d reposts, %d replies\n", r.Likes, r.Reposts, r.Replies)
		fmt.Fprintf(&b, "    - ID: %s\n", r.ID)
	}
	return b.String()
}

func formatTrendingTopics(topics []string, platform string) string {
	if len(topics) == 0 {
		return fmt.Sprintf("No trending topics available for %s.", platform)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Trending Topics on %s:\n\n", platform)
	for i, topic := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, topic)
	}
	return b.String()
}

func formatTrendingFeed(feed []social.Content, platform string) string {
	if len(feed) == 0 {
		return fmt.Sprintf("No trending content available for %s.", platform)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Trending Content on %s:\n\n", platform)
	for i, c := range feed {
		author := c.AuthorName
		if author == "" {
			author = c.AuthorUsername
		}
		if author == "" {
			author = "Unknown Author"
		}
		url := c.URL
		if url == "" {
			url = "N/A"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Text)
		fmt.Fprintf(&b, "   - By %s at %s\n", author, formatTime(c.CreatedAt))
		fmt.Fprintf(&b, "   - %s\n", formatEngagement(c))
		fmt.Fprintf(&b, "   - URL: %s\n", url)
	}
	return b.String()
}

// formatEngagement lists only the non-zero counters, or "no engagement yet"
// when all are zero.
func formatEngagement(c social.Content) string {
	var parts []string
	if c.Likes > 0 {
		parts = append(parts, fmt.Sprintf("%d likes", c.Likes))
	}
	if c.Reposts > 0 {
		parts = append(parts, fmt.Sprintf("%d reposts", c.Reposts))
	}
	if c.Replies > 0 {
		parts = append(parts, fmt.Sprintf("%d replies", c.Replies))
	}
	if len(parts) == 0 {
		return "no engagement yet"
	}
	return strings.Join(parts, ", ")
}

func formatChannels(b *strings.Builder, channels []social.Channel) {
	for _, ch := range channels {
		desc := ch.Description
		if desc == "" {
			desc = "No description"
		}
		url := ch.ParentURL
		if url == "" {
			url = "N/A"
		}
		fmt.Fprintf(b, "Channel: %s\n", ch.Name)
		fmt.Fprintf(b, "Description: %s\n", desc)
		fmt.Fprintf(b, "Followers: %s\n", humanize.Comma(int64(ch.FollowerCount)))
		fmt.Fprintf(b, "Created: %s\n", formatTime(ch.CreatedAt))
		if ch.Significance != "" {
			fmt.Fprintf(b, "Significance: %s\n", ch.Significance)
		}
		if len(ch.FocusAreas) > 0 {
			fmt.Fprintf(b, "Focus Areas: %s\n", strings.Join(ch.FocusAreas, ", "))
		}
		fmt.Fprintf(b, "URL: %s\n\n", url)
	}
}

func formatChannelPage(page social.ChannelPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d channels:\n\n", len(page.Channels))
	formatChannels(&b, page.Channels)
	if page.NextCursor != "" {
		fmt.Fprintf(&b, "Use the cursor %q to fetch more results.\n", page.NextCursor)
	}
	return b.String()
}

// formatBulkChannels renders per-query results in the caller's query order.
func formatBulkChannels(queries []string, results map[string]social.ChannelPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search Results for %d queries:\n\n", len(queries))
	for _, q := range queries {
		page := results[q]
		fmt.Fprintf(&b, "Results for %q:\n", q)
		if len(page.Channels) == 0 {
			b.WriteString("No channels found.\n")
		} else {
			formatChannels(&b, page.Channels)
		}
		if page.NextCursor != "" {
			fmt.Fprintf(&b, "Use the cursor %q to fetch more results for this query.\n", page.NextCursor)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatBalance(bal *social.Balance) string {
	if bal == nil || len(bal.Addresses) == 0 {
		return "No balance data found for user."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Token Balances for user %s on %s:\n", bal.UserID, bal.Platform)
	for _, addr := range bal.Addresses {
		fmt.Fprintf(&b, "\nAddress %s (%s):\n", addr.Address, addr.Network)
		if len(addr.Tokens) == 0 {
			b.WriteString("- No token balances.\n")
			continue
		}
		for _, tok := range addr.Tokens {
			name := tok.Name
			if tok.Symbol != "" {
				name = fmt.Sprintf("%s (%s)", tok.Name, tok.Symbol)
			}
			fmt.Fprintf(&b, "- %s: %s", name, tok.InToken)
			if tok.InUSDC != "" {
				fmt.Fprintf(&b, " (≈ %s USDC)", tok.InUSDC)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
