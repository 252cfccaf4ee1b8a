package mcp

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

const platformDesc = "Social platform (farcaster, twitter, telegram)"

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolSearchContent(),
		s.toolGetUserProfile(),
		s.toolGetWalletProfile(),
		s.toolGetUserContent(),
		s.toolGetThread(),
		s.toolGetTrendingTopics(),
		s.toolGetTrendingFeed(),
		s.toolSearchChannels(),
		s.toolSearchBulkChannels(),
		s.toolGetUserBalance(),
		s.toolListProviders(),
	}
}

// ─── search-content ───────────────────────────────────────────────────────────

func (s *Server) toolSearchContent() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search-content",
		mcplib.WithDescription(`Search content on a social platform. Use "from:<username>" as the query to list a single author's posts.`),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("query",
			mcplib.Description("Search query"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of results to return"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchContent}
}

func (s *Server) handleSearchContent(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	query, ok := stringArg(req, "query")
	if !ok || query == "" {
		return resultErr(errors.New("search-content: query is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}
	if !p.IsAvailable(ctx) {
		return resultErr(fmt.Errorf("Provider for platform '%s' is not available", platform)), nil
	}

	s.logger.InfoContext(ctx, "mcp: search-content", "platform", platform, "query", query)
	results, err := p.SearchContent(ctx, query, social.SearchOptions{Limit: intArg(req, "limit", 10)})
	if err != nil {
		return resultErr(fmt.Errorf("Error searching %s for '%s': %v", platform, query, err)), nil
	}
	return resultText(formatSearchResults(results, query, platform)), nil
}

// ─── get-user-profile ─────────────────────────────────────────────────────────

func (s *Server) toolGetUserProfile() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-user-profile",
		mcplib.WithDescription("Get a user's profile by their platform-native numeric ID or username."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("userId",
			mcplib.Description("User ID or username on the platform"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserProfile}
}

func (s *Server) handleGetUserProfile(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	userID, ok := stringArg(req, "userId")
	if !ok || userID == "" {
		return resultErr(errors.New("get-user-profile: userId is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	profile, err := p.GetUserProfile(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s user profile for '%s': %v", platform, userID, err)), nil
	}
	return resultText(formatProfile(profile)), nil
}

// ─── get-wallet-profile ───────────────────────────────────────────────────────

func (s *Server) toolGetWalletProfile() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-wallet-profile",
		mcplib.WithDescription("Get a user's profile by a verified wallet address. Platforms without a wallet concept return an unsupported-operation profile."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("walletAddress",
			mcplib.Description("Ethereum wallet address (0x...)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetWalletProfile}
}

func (s *Server) handleGetWalletProfile(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	address, ok := stringArg(req, "walletAddress")
	if !ok || address == "" {
		return resultErr(errors.New("get-wallet-profile: walletAddress is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	profile, err := p.GetUserProfileByWalletAddress(ctx, address)
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s profile for wallet '%s': %v", platform, address, err)), nil
	}
	return resultText(formatProfile(profile)), nil
}

// ─── get-user-content ─────────────────────────────────────────────────────────

func (s *Server) toolGetUserContent() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-user-content",
		mcplib.WithDescription("Get a user's recent posts by their platform-native numeric ID or username."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("userId",
			mcplib.Description("User ID or username on the platform"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of posts to return"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserContent}
}

func (s *Server) handleGetUserContent(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	userID, ok := stringArg(req, "userId")
	if !ok || userID == "" {
		return resultErr(errors.New("get-user-content: userId is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	content, err := p.GetUserContent(ctx, userID, social.ContentOptions{Limit: intArg(req, "limit", 10)})
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s content for user '%s': %v", platform, userID, err)), nil
	}
	return resultText(formatUserContent(content, platform)), nil
}

// ─── get-thread ───────────────────────────────────────────────────────────────

func (s *Server) toolGetThread() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-thread",
		mcplib.WithDescription("Get a conversation thread: the root post and its replies."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("threadId",
			mcplib.Description("Thread or conversation ID"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetThread}
}

func (s *Server) handleGetThread(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	threadID, ok := stringArg(req, "threadId")
	if !ok || threadID == "" {
		return resultErr(errors.New("get-thread: threadId is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	thread, err := p.GetThread(ctx, threadID, social.ThreadOptions{})
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s thread '%s': %v", platform, threadID, err)), nil
	}
	return resultText(formatThread(thread)), nil
}

// ─── get-trending-topics ──────────────────────────────────────────────────────

func (s *Server) toolGetTrendingTopics() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-trending-topics",
		mcplib.WithDescription("Get currently trending topics on a platform."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of trending topics to return"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetTrendingTopics}
}

func (s *Server) handleGetTrendingTopics(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	topics, err := p.GetTrendingTopics(ctx, social.TrendingOptions{Limit: intArg(req, "limit", 10)})
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s trending topics: %v", platform, err)), nil
	}
	return resultText(formatTrendingTopics(topics, platform)), nil
}

// ─── get-trending-feed ────────────────────────────────────────────────────────

func (s *Server) toolGetTrendingFeed() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-trending-feed",
		mcplib.WithDescription(`Get the trending content feed for a platform. Supports alternative ranking providers ("neynar", "openrank", "mbd") and aggregation time windows. Platforms without a distinct trending feed fall back to trending topics.`),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("provider",
			mcplib.Description("Ranking provider: neynar (default), openrank or mbd"),
		),
		mcplib.WithString("timeWindow",
			mcplib.Description("Aggregation window: 1h, 6h, 12h, 24h (default) or 7d"),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of feed items to return"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetTrendingFeed}
}

func (s *Server) handleGetTrendingFeed(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}

	opt := social.TrendingOptions{Limit: intArg(req, "limit", 10)}
	if v, ok := stringArg(req, "provider"); ok {
		opt.Provider = social.FeedProvider(v)
	}
	if v, ok := stringArg(req, "timeWindow"); ok {
		opt.TimeWindow = social.TimeWindow(v)
	}

	feeder, ok := p.(social.TrendingFeeder)
	if !ok {
		// No distinct trending feed on this platform; topics are the closest
		// equivalent.
		topics, err := p.GetTrendingTopics(ctx, opt)
		if err != nil {
			return resultErr(fmt.Errorf("Error fetching %s trending topics: %v", platform, err)), nil
		}
		return resultText(formatTrendingTopics(topics, platform)), nil
	}

	feed, err := feeder.GetTrendingFeed(ctx, opt)
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s trending feed: %v", platform, err)), nil
	}
	return resultText(formatTrendingFeed(feed, platform)), nil
}

// ─── search-channels ──────────────────────────────────────────────────────────

func (s *Server) toolSearchChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search-channels",
		mcplib.WithDescription("Search a platform's channels (community/topic groupings). Only available on platforms with a channel concept."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("query",
			mcplib.Description("Channel search query"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of channels to return"),
		),
		mcplib.WithString("cursor",
			mcplib.Description("Pagination cursor from a previous search"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchChannels}
}

func (s *Server) handleSearchChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	query, ok := stringArg(req, "query")
	if !ok || query == "" {
		return resultErr(errors.New("search-channels: query is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}
	searcher, ok := p.(social.ChannelSearcher)
	if !ok {
		return resultText(fmt.Sprintf("Channel search is not supported for platform '%s'", platform)), nil
	}

	cursor, _ := stringArg(req, "cursor")
	page, err := searcher.SearchChannels(ctx, query, social.ChannelSearchOptions{
		Limit:  intArg(req, "limit", 10),
		Cursor: cursor,
	})
	if err != nil {
		return resultErr(fmt.Errorf("Error searching channels on %s for '%s': %v", platform, query, err)), nil
	}
	return resultText(formatChannelPage(page)), nil
}

// ─── search-bulk-channels ─────────────────────────────────────────────────────

func (s *Server) toolSearchBulkChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search-bulk-channels",
		mcplib.WithDescription("Search a platform's channels with several queries at once. Queries run in parallel; a failing query yields an empty result for that query only."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithArray("queries",
			mcplib.Description("Channel search queries"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of channels to return per query"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchBulkChannels}
}

func (s *Server) handleSearchBulkChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	queries := stringSliceArg(req, "queries")
	if len(queries) == 0 {
		return resultErr(errors.New("search-bulk-channels: queries is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}
	searcher, ok := p.(social.ChannelSearcher)
	if !ok {
		return resultText(fmt.Sprintf("Bulk channel search is not supported for platform '%s'", platform)), nil
	}

	results, err := searcher.SearchBulkChannels(ctx, queries, social.ChannelSearchOptions{
		Limit: intArg(req, "limit", 10),
	})
	if err != nil {
		return resultErr(fmt.Errorf("Error performing bulk channel search on %s: %v", platform, err)), nil
	}
	return resultText(formatBulkChannels(queries, results)), nil
}

// ─── get-user-balance ─────────────────────────────────────────────────────────

func (s *Server) toolGetUserBalance() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-user-balance",
		mcplib.WithDescription("Get a user's on-chain token balances across their verified addresses. Only available on platforms with an on-chain identity linkage."),
		mcplib.WithString("platform",
			mcplib.Description(platformDesc),
			mcplib.Required(),
		),
		mcplib.WithString("userId",
			mcplib.Description("User ID or username on the platform"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserBalance}
}

func (s *Server) handleGetUserBalance(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	platform, _ := stringArg(req, "platform")
	userID, ok := stringArg(req, "userId")
	if !ok || userID == "" {
		return resultErr(errors.New("get-user-balance: userId is required")), nil
	}

	p, err := s.provider(platform)
	if err != nil {
		return resultErr(err), nil
	}
	bp, ok := p.(social.BalanceProvider)
	if !ok {
		return resultText(fmt.Sprintf("Balance lookup is not supported for platform '%s'", platform)), nil
	}

	balance, err := bp.GetUserBalance(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("Error fetching %s balance for user '%s': %v", platform, userID, err)), nil
	}
	return resultText(formatBalance(balance)), nil
}

// ─── list-providers ───────────────────────────────────────────────────────────

func (s *Server) toolListProviders() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list-providers",
		mcplib.WithDescription("List registered platform providers and report which are currently reachable. All providers are probed in parallel."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListProviders}
}

func (s *Server) handleListProviders(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	all := s.reg.AllProviders()
	available := s.reg.AvailableProviders(ctx)

	avail := make(map[string]bool, len(available))
	for _, p := range available {
		avail[p.Name()] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Registered providers (%d):\n", len(all))
	for _, p := range all {
		status := "unavailable"
		if avail[p.Name()] {
			status = "available"
		}
		fmt.Fprintf(&b, "- %s (platform: %s): %s\n", p.Name(), p.Platform(), status)
	}
	return resultText(b.String()), nil
}
