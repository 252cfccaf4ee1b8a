package mcp

// In this file: analysis prompts the server offers to connecting agents.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

func (s *Server) registerPrompts(srv *mcpsrv.MCPServer) {
	srv.AddPrompt(mcplib.NewPrompt("analyze-thread",
		mcplib.WithPromptDescription("Analyze a conversation thread"),
		mcplib.WithArgument("platform",
			mcplib.ArgumentDescription(platformDesc),
			mcplib.RequiredArgument(),
		),
		mcplib.WithArgument("threadId",
			mcplib.ArgumentDescription("Thread or conversation ID to analyze"),
			mcplib.RequiredArgument(),
		),
	), s.promptAnalyzeThread)

	srv.AddPrompt(mcplib.NewPrompt("summarize-user-activity",
		mcplib.WithPromptDescription("Summarize a user's recent activity"),
		mcplib.WithArgument("platform",
			mcplib.ArgumentDescription(platformDesc),
			mcplib.RequiredArgument(),
		),
		mcplib.WithArgument("userId",
			mcplib.ArgumentDescription("User ID or username to analyze"),
			mcplib.RequiredArgument(),
		),
	), s.promptSummarizeUserActivity)

	srv.AddPrompt(mcplib.NewPrompt("explore-trending-topics",
		mcplib.WithPromptDescription("Explore current trending topics"),
		mcplib.WithArgument("platform",
			mcplib.ArgumentDescription(platformDesc),
			mcplib.RequiredArgument(),
		),
	), s.promptExploreTrendingTopics)

	srv.AddPrompt(mcplib.NewPrompt("analyze-search-results",
		mcplib.WithPromptDescription("Search for a topic and analyze the discussion"),
		mcplib.WithArgument("platform",
			mcplib.ArgumentDescription(platformDesc),
			mcplib.RequiredArgument(),
		),
		mcplib.WithArgument("query",
			mcplib.ArgumentDescription("Search query to analyze"),
			mcplib.RequiredArgument(),
		),
	), s.promptAnalyzeSearchResults)
}

// userPrompt builds a single-message prompt result with the given text.
func userPrompt(description, text string) *mcplib.GetPromptResult {
	return mcplib.NewGetPromptResult(description, []mcplib.PromptMessage{
		mcplib.NewPromptMessage(mcplib.RoleUser, mcplib.NewTextContent(text)),
	})
}

func (s *Server) promptAnalyzeThread(ctx context.Context, req mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
	platform := req.Params.Arguments["platform"]
	threadID := req.Params.Arguments["threadId"]
	return userPrompt("Thread analysis", fmt.Sprintf(
		"Please analyze the social media thread with ID %s from %s. Provide a summary of the main discussion points, key participants, and overall sentiment. If there are any interesting insights or notable aspects of the conversation, please highlight those as well.",
		threadID, platform)), nil
}

func (s *Server) promptSummarizeUserActivity(ctx context.Context, req mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
	platform := req.Params.Arguments["platform"]
	userID := req.Params.Arguments["userId"]
	return userPrompt("User activity summary", fmt.Sprintf(
		"Please analyze the recent activity of user %s on %s. Summarize their main topics of interest, posting patterns, and overall sentiment. What are the key themes in their content? Who do they interact with most frequently? What seems to engage them the most?",
		userID, platform)), nil
}

func (s *Server) promptExploreTrendingTopics(ctx context.Context, req mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
	platform := req.Params.Arguments["platform"]
	return userPrompt("Trending topics exploration", fmt.Sprintf(
		"What are the current trending topics on %s? Please analyze these trends and provide insights on why they might be popular right now. Are there any emerging patterns or themes across multiple trending topics? How might these trends relate to current events or community interests?",
		platform)), nil
}

func (s *Server) promptAnalyzeSearchResults(ctx context.Context, req mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
	platform := req.Params.Arguments["platform"]
	query := req.Params.Arguments["query"]
	return userPrompt("Search result analysis", fmt.Sprintf(
		"Please search for content related to %q on %s and analyze the results. What are the key themes and perspectives? Who are the main voices in this conversation? Is there a dominant sentiment or are opinions varied? Provide a comprehensive analysis of the discussion around this topic.",
		query, platform)), nil
}
