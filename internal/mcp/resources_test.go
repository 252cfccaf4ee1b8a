package mcp

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// resourceReq builds a ReadResourceRequest with the given URI and expanded
// template arguments.
func resourceReq(uri string, args map[string]any) mcplib.ReadResourceRequest {
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = uri
	req.Params.Arguments = args
	return req
}

func TestResourceArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"plain string", map[string]any{"platform": "farcaster"}, "farcaster"},
		{"string slice", map[string]any{"platform": []string{"farcaster"}}, "farcaster"},
		{"any slice", map[string]any{"platform": []any{"farcaster"}}, "farcaster"},
		{"empty slice", map[string]any{"platform": []string{}}, ""},
		{"absent", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := resourceReq("social://farcaster/web3/search", tt.args)
			assert.Equal(t, tt.want, resourceArg(req, "platform"))
		})
	}
}

func TestResourceSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMockProvider(ctrl, "farcaster")
	m.EXPECT().SearchContent(gomock.Any(), "web3", social.SearchOptions{Limit: 10}).
		Return([]social.Content{testContent("0xaaa", "gm web3")}, nil)
	srv := newTestServer(t, m)

	req := resourceReq("social://farcaster/web3/search", map[string]any{
		"platform": "farcaster",
		"query":    "web3",
	})
	text, err := srv.resourceSearch(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, text, `Search Results for "web3" on farcaster:`)
}

func TestResourceSearch_unknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, newMockProvider(ctrl, "farcaster"))

	req := resourceReq("social://myspace/web3/search", map[string]any{
		"platform": "myspace",
		"query":    "web3",
	})
	_, err := srv.resourceSearch(t.Context(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or not enabled")
}

func TestResourceProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMockProvider(ctrl, "farcaster")
	m.EXPECT().GetUserProfile(gomock.Any(), "dwr").
		Return(social.Profile{Username: "dwr", DisplayName: "Dan", Platform: "farcaster"}, nil)
	srv := newTestServer(t, m)

	req := resourceReq("social://farcaster/user/dwr/profile", map[string]any{
		"platform": "farcaster",
		"userId":   "dwr",
	})
	text, err := srv.resourceProfile(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, text, "User Profile: @dwr (Dan)")
}

func TestResourceTrendingFeed_queryParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newFullMock(ctrl, "farcaster")
	m.MockTrendingFeeder.EXPECT().
		GetTrendingFeed(gomock.Any(), social.TrendingOptions{
			Limit:      5,
			Provider:   social.FeedMBD,
			TimeWindow: social.Window7d,
		}).
		Return([]social.Content{testContent("0xaaa", "trending cast")}, nil)
	srv := newTestServer(t, m)

	req := resourceReq("social://farcaster/trending-feed?provider=mbd&timeWindow=7d&limit=5", map[string]any{
		"platform": "farcaster",
	})
	text, err := srv.resourceTrendingFeed(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, text, "Trending Content on farcaster:")
}

func TestResourceTrendingFeed_unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, newMockProvider(ctrl, "twitter"))

	req := resourceReq("social://twitter/trending-feed", map[string]any{
		"platform": "twitter",
	})
	text, err := srv.resourceTrendingFeed(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, text, "currently only supported for Farcaster")
	assert.Contains(t, text, "For twitter, please use the trending topics endpoint instead.")
}

func TestResourceChannelSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newFullMock(ctrl, "farcaster")
	m.MockChannelSearcher.EXPECT().
		SearchChannels(gomock.Any(), "base", social.ChannelSearchOptions{Limit: 5, Cursor: "abc"}).
		Return(social.ChannelPage{Channels: []social.Channel{{ID: "base", Name: "Base", CreatedAt: testTime}}}, nil)
	srv := newTestServer(t, m)

	req := resourceReq("social://farcaster/channels/search?query=base&limit=5&cursor=abc", map[string]any{
		"platform": "farcaster",
	})
	text, err := srv.resourceChannelSearch(t.Context(), req)
	require.NoError(t, err)
	assert.Contains(t, text, "Found 1 channels:")
	assert.Contains(t, text, "Channel: Base")
}

func TestResourceChannelSearch_noQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, newFullMock(ctrl, "farcaster"))

	req := resourceReq("social://farcaster/channels/search", map[string]any{
		"platform": "farcaster",
	})
	_, err := srv.resourceChannelSearch(t.Context(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no query provided")
}
