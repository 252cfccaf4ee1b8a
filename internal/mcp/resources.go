package mcp

// In this file: resource templates under the social:// scheme.  Resources
// mirror the read tools for MCP clients that prefer URI-addressed context
// over tool calls.  Handlers degrade to an error text body instead of
// failing the read, so the client always receives renderable content.

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

func (s *Server) registerResources(srv *mcpsrv.MCPServer) {
	type resource struct {
		uri     string
		name    string
		desc    string
		handler func(ctx context.Context, req mcplib.ReadResourceRequest) (string, error)
	}
	for _, r := range []resource{
		{"social://{platform}/{query}/search", "social-search",
			"Search content on a social platform", s.resourceSearch},
		{"social://{platform}/user/{userId}/profile", "user-profile",
			"A user's profile by ID or username", s.resourceProfile},
		{"social://{platform}/wallet/{walletAddress}/profile", "user-profile-by-wallet",
			"A user's profile by verified wallet address", s.resourceWalletProfile},
		{"social://{platform}/user/{userId}/content", "user-content",
			"A user's recent posts", s.resourceUserContent},
		{"social://{platform}/thread/{threadId}", "thread",
			"A conversation thread with its replies", s.resourceThread},
		{"social://{platform}/trending", "trending",
			"Currently trending topics", s.resourceTrending},
		{"social://{platform}/trending-feed", "trending-feed",
			"Trending content feed; accepts provider, timeWindow and limit query parameters", s.resourceTrendingFeed},
		{"social://{platform}/channels/search", "channel-search",
			"Channel search; accepts query, limit and cursor query parameters", s.resourceChannelSearch},
	} {
		tmpl := mcplib.NewResourceTemplate(r.uri, r.name,
			mcplib.WithTemplateDescription(r.desc),
			mcplib.WithTemplateMIMEType("text/plain"),
		)
		handler := r.handler
		srv.AddResourceTemplate(tmpl, func(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			text, err := handler(ctx, req)
			if err != nil {
				text = err.Error()
			}
			return []mcplib.ResourceContents{mcplib.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     text,
			}}, nil
		})
	}
}

// resourceArg extracts a URI template argument.  Template expansion may
// produce either a string or a one-element string slice depending on the
// client.
func resourceArg(req mcplib.ReadResourceRequest, name string) string {
	v, ok := req.Params.Arguments[name]
	if !ok {
		return ""
	}
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	case []any:
		if len(a) > 0 {
			if s, ok := a[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// resourceQuery returns the query parameters of the resource URI.
func resourceQuery(req mcplib.ReadResourceRequest) url.Values {
	u, err := url.Parse(req.Params.URI)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

func (s *Server) resourceSearch(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	query := resourceArg(req, "query")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	results, err := p.SearchContent(ctx, query, social.SearchOptions{Limit: 10})
	if err != nil {
		return "", fmt.Errorf("Error searching %s for '%s': %v", platform, query, err)
	}
	return formatSearchResults(results, query, platform), nil
}

func (s *Server) resourceProfile(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	userID := resourceArg(req, "userId")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	profile, err := p.GetUserProfile(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("Error fetching %s user profile for '%s': %v", platform, userID, err)
	}
	return formatProfile(profile), nil
}

func (s *Server) resourceWalletProfile(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	address := resourceArg(req, "walletAddress")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	profile, err := p.GetUserProfileByWalletAddress(ctx, address)
	if err != nil {
		return "", fmt.Errorf("Error fetching %s user profile for wallet '%s': %v", platform, address, err)
	}
	return formatProfile(profile), nil
}

func (s *Server) resourceUserContent(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	userID := resourceArg(req, "userId")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	content, err := p.GetUserContent(ctx, userID, social.ContentOptions{})
	if err != nil {
		return "", fmt.Errorf("Error fetching %s content for user '%s': %v", platform, userID, err)
	}
	return formatUserContent(content, platform), nil
}

func (s *Server) resourceThread(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	threadID := resourceArg(req, "threadId")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	thread, err := p.GetThread(ctx, threadID, social.ThreadOptions{})
	if err != nil {
		return "", fmt.Errorf("Error fetching %s thread '%s': %v", platform, threadID, err)
	}
	return formatThread(thread), nil
}

func (s *Server) resourceTrending(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	topics, err := p.GetTrendingTopics(ctx, social.TrendingOptions{})
	if err != nil {
		return "", fmt.Errorf("Error fetching %s trending topics: %v", platform, err)
	}
	return formatTrendingTopics(topics, platform), nil
}

func (s *Server) resourceTrendingFeed(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	feeder, ok := p.(social.TrendingFeeder)
	if !ok {
		return fmt.Sprintf("Trending feed with multiple providers is currently only supported for Farcaster. For %s, please use the trending topics endpoint instead.", platform), nil
	}

	var opt social.TrendingOptions
	q := resourceQuery(req)
	if v := q.Get("provider"); v != "" {
		opt.Provider = social.FeedProvider(v)
	}
	if v := q.Get("timeWindow"); v != "" {
		opt.TimeWindow = social.TimeWindow(v)
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opt.Limit = n
		}
	}

	feed, err := feeder.GetTrendingFeed(ctx, opt)
	if err != nil {
		return "", fmt.Errorf("Error fetching %s trending feed: %v", platform, err)
	}
	return formatTrendingFeed(feed, platform), nil
}

func (s *Server) resourceChannelSearch(ctx context.Context, req mcplib.ReadResourceRequest) (string, error) {
	platform := resourceArg(req, "platform")
	p, err := s.provider(platform)
	if err != nil {
		return "", err
	}
	searcher, ok := p.(social.ChannelSearcher)
	if !ok {
		return "", fmt.Errorf("Channel search is not supported for platform '%s'", platform)
	}

	q := resourceQuery(req)
	query := q.Get("query")
	if query == "" {
		return "", fmt.Errorf("Error searching channels on %s: no query provided", platform)
	}
	opt := social.ChannelSearchOptions{Limit: 10, Cursor: q.Get("cursor")}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opt.Limit = n
		}
	}

	page, err := searcher.SearchChannels(ctx, query, opt)
	if err != nil {
		return "", fmt.Errorf("Error searching channels on %s for '%s': %v", platform, query, err)
	}
	return formatChannelPage(page), nil
}
