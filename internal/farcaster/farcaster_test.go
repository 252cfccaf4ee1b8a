package farcaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// reply is one canned upstream response.
type reply struct {
	status int
	body   string
}

// upstream is a fake Neynar API that serves canned responses per path and
// counts requests.
type upstream struct {
	mu     sync.Mutex
	calls  map[string]int
	routes map[string]reply
}

func newUpstream(routes map[string]reply) *upstream {
	return &upstream{calls: make(map[string]int), routes: routes}
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls[r.URL.Path]++
	u.mu.Unlock()
	rep, ok := u.routes[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"cast not found"}`))
		return
	}
	if rep.status != 0 {
		w.WriteHeader(rep.status)
	}
	_, _ = w.Write([]byte(rep.body))
}

func (u *upstream) count(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

func (u *upstream) total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	var n int
	for _, c := range u.calls {
		n += c
	}
	return n
}

// newTestProvider wires a provider to the fake upstream with the rate
// limiter disabled.
func newTestProvider(t *testing.T, u *upstream, opt ...Option) *Provider {
	t.Helper()
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)
	cl := neynar.New("test-key",
		neynar.WithBaseURL(srv.URL),
		neynar.WithHTTPClient(srv.Client()),
		neynar.WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
	return New("test-key", append([]Option{WithClient(cl)}, opt...)...)
}

const (
	dwrSearchBody = `{"result":{"users":[{"fid":3,"username":"dwr","display_name":"Dan"}]}}`
	dwrBulkBody   = `{"users":[{"fid":3,"username":"dwr","display_name":"Dan","follower_count":1000,"following_count":50,"profile":{"bio":{"text":"building"}},"verified_addresses":{"eth_addresses":["0xabc"]},"verifications":["0xabc"]}]}`
	castsBody     = `{"casts":[{"hash":"0xaaa","text":"gm","author":{"fid":3,"username":"dwr"},"reactions":{"likes_count":5,"recasts_count":2},"replies":{"count":1}}]}`
)

func TestProvider_GetUserProfile(t *testing.T) {
	t.Run("numeric id skips user search", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {body: dwrBulkBody}})
		p := newTestProvider(t, u)

		got, err := p.GetUserProfile(t.Context(), "3")
		require.NoError(t, err)
		assert.Equal(t, "3", got.ID)
		assert.Equal(t, "dwr", got.Username)
		assert.True(t, got.Verified)
		assert.Equal(t, "0xabc", got.Metadata["primaryEthAddress"])
		assert.Equal(t, 1, u.count("/user/bulk"))
		assert.Zero(t, u.count("/user/search"))
	})
	t.Run("username goes through search", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/search": {body: dwrSearchBody}})
		p := newTestProvider(t, u)

		got, err := p.GetUserProfile(t.Context(), "dwr")
		require.NoError(t, err)
		assert.Equal(t, "3", got.ID)
		assert.Equal(t, 1, u.count("/user/search"))
		assert.Zero(t, u.count("/user/bulk"))
	})
	t.Run("unknown user is an error", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/search": {body: `{"result":{"users":[]}}`}})
		p := newTestProvider(t, u)

		_, err := p.GetUserProfile(t.Context(), "nobody")
		require.ErrorIs(t, err, social.ErrNotFound)
	})
	t.Run("platform is always stamped", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {body: dwrBulkBody}})
		p := newTestProvider(t, u)

		got, err := p.GetUserProfile(t.Context(), "3")
		require.NoError(t, err)
		assert.Equal(t, PlatformName, got.Platform)
	})
}

func TestProvider_GetUserProfileByWalletAddress(t *testing.T) {
	t.Run("prefers complete profile over placeholder", func(t *testing.T) {
		const body = `{"0xabc":[{"fid":10,"username":"!10"},{"fid":11,"username":"alice","display_name":"Alice"}]}`
		u := newUpstream(map[string]reply{"/user/bulk-by-address": {body: body}})
		p := newTestProvider(t, u)

		got, err := p.GetUserProfileByWalletAddress(t.Context(), "0xAbC")
		require.NoError(t, err)
		assert.Equal(t, "11", got.ID)
		assert.Equal(t, "alice", got.Username)
	})
	t.Run("unknown address is an error", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk-by-address": {body: `{}`}})
		p := newTestProvider(t, u)

		_, err := p.GetUserProfileByWalletAddress(t.Context(), "0xdead")
		require.ErrorIs(t, err, social.ErrNotFound)
	})
}

func TestProvider_SearchContent(t *testing.T) {
	t.Run("plain query uses cast search", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/cast/search": {body: `{"result":` + castsBody + `}`}})
		p := newTestProvider(t, u)

		got, err := p.SearchContent(t.Context(), "gm", social.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "0xaaa", got[0].ID)
		assert.Equal(t, "3", got[0].AuthorID)
		assert.Equal(t, 5, got[0].Likes)
		assert.Equal(t, 2, got[0].Reposts)
		assert.Equal(t, 1, got[0].Replies)
		assert.Equal(t, "https://warpcast.com/dwr/0xaaa", got[0].URL)
		assert.Equal(t, 1, u.count("/cast/search"))
		assert.Zero(t, u.count("/user/search"))
	})
	t.Run("from: query routes through user resolution", func(t *testing.T) {
		u := newUpstream(map[string]reply{
			"/user/search":     {body: dwrSearchBody},
			"/feed/user/casts": {body: castsBody},
		})
		p := newTestProvider(t, u)

		got, err := p.SearchContent(t.Context(), "from:dwr", social.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, u.count("/user/search"))
		assert.Equal(t, 1, u.count("/feed/user/casts"))
		assert.Zero(t, u.count("/cast/search"))
	})
	t.Run("from: query with unknown user degrades to empty", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/search": {body: `{"result":{"users":[]}}`}})
		p := newTestProvider(t, u)

		got, err := p.SearchContent(t.Context(), "from:nobody", social.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
	t.Run("upstream failure degrades to empty", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/cast/search": {status: http.StatusInternalServerError}})
		p := newTestProvider(t, u)

		got, err := p.SearchContent(t.Context(), "gm", social.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestProvider_GetUserContent(t *testing.T) {
	t.Run("username search precedes cast fetch", func(t *testing.T) {
		u := newUpstream(map[string]reply{
			"/user/search":     {body: dwrSearchBody},
			"/feed/user/casts": {body: castsBody},
		})
		p := newTestProvider(t, u)

		got, err := p.GetUserContent(t.Context(), "dwr", social.ContentOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, u.count("/user/search"))
		assert.Equal(t, 1, u.count("/feed/user/casts"))
	})
	t.Run("numeric id skips user search", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed/user/casts": {body: castsBody}})
		p := newTestProvider(t, u)

		_, err := p.GetUserContent(t.Context(), "3", social.ContentOptions{})
		require.NoError(t, err)
		assert.Zero(t, u.count("/user/search"))
	})
	t.Run("unresolvable user is an error", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/search": {body: `{"result":{"users":[]}}`}})
		p := newTestProvider(t, u)

		_, err := p.GetUserContent(t.Context(), "nobody", social.ContentOptions{})
		require.ErrorIs(t, err, social.ErrNotFound)
	})
}

func TestProvider_GetThread(t *testing.T) {
	t.Run("root and flattened replies", func(t *testing.T) {
		const convBody = `{"conversation":{"cast":{"hash":"0xaaa","direct_replies":[
			{"hash":"0xbbb","text":"reply one","author":{"fid":4,"username":"bob"},
			 "direct_replies":[{"hash":"0xccc","text":"nested","author":{"fid":5,"username":"carol"}}]},
			{"hash":"0xddd","text":"reply two","author":{"fid":6,"username":"dave"}}
		]}}}`
		u := newUpstream(map[string]reply{
			"/cast":              {body: `{"cast":{"hash":"0xaaa","text":"root","author":{"fid":3,"username":"dwr"}}}`},
			"/cast/conversation": {body: convBody},
		})
		p := newTestProvider(t, u)

		got, err := p.GetThread(t.Context(), "0xaaa", social.ThreadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "0xaaa", got.Content.ID)
		require.Len(t, got.Replies, 3)
		assert.Equal(t, "0xbbb", got.Replies[0].ID)
		assert.Equal(t, "0xccc", got.Replies[1].ID)
		assert.Equal(t, "0xddd", got.Replies[2].ID)
	})
	t.Run("rejecting upstream yields renderable thread", func(t *testing.T) {
		u := newUpstream(nil) // every path 404s
		p := newTestProvider(t, u)

		got, err := p.GetThread(t.Context(), "0xunknown", social.ThreadOptions{})
		require.NoError(t, err)
		assert.Contains(t, got.Content.Text, "not found")
		assert.NotNil(t, got.Replies)
		assert.Empty(t, got.Replies)
	})
	t.Run("failed reply fetch keeps root", func(t *testing.T) {
		u := newUpstream(map[string]reply{
			"/cast": {body: `{"cast":{"hash":"0xaaa","text":"root","author":{"fid":3,"username":"dwr"}}}`},
		})
		p := newTestProvider(t, u)

		got, err := p.GetThread(t.Context(), "0xaaa", social.ThreadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "root", got.Content.Text)
		assert.NotNil(t, got.Replies)
		assert.Empty(t, got.Replies)
	})
}

func TestProvider_GetTrendingTopics(t *testing.T) {
	t.Run("hashtags deduplicated in first-seen order", func(t *testing.T) {
		const body = `{"casts":[
			{"hash":"0x1","text":"all about #web3 and #ai"},
			{"hash":"0x2","text":"#ai again plus #base-l2"}
		]}`
		u := newUpstream(map[string]reply{"/feed": {body: body}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingTopics(t.Context(), social.TrendingOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"web3", "ai", "base-l2"}, got)
	})
	t.Run("no hashtags falls back to defaults", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed": {body: `{"casts":[{"hash":"0x1","text":"nothing tagged"}]}`}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingTopics(t.Context(), social.TrendingOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"farcaster", "web3", "crypto", "ai"}, got)
	})
	t.Run("upstream failure falls back to defaults", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed": {status: http.StatusInternalServerError}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingTopics(t.Context(), social.TrendingOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"farcaster", "web3", "crypto", "ai"}, got)
	})
	t.Run("limit applies", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed": {body: `{"casts":[{"hash":"0x1","text":"#a #b #c"}]}`}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingTopics(t.Context(), social.TrendingOptions{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestProvider_GetTrendingFeed(t *testing.T) {
	t.Run("default ranking uses the filter feed", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed": {body: castsBody}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingFeed(t.Context(), social.TrendingOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, u.count("/feed"))
		assert.Zero(t, u.count("/feed/trending"))
	})
	t.Run("alternative ranking uses the trending endpoint", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed/trending": {body: `{"result":` + castsBody + `}`}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingFeed(t.Context(), social.TrendingOptions{Provider: social.FeedOpenRank})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, u.count("/feed/trending"))
		assert.Zero(t, u.count("/feed"))
	})
	t.Run("truncates after normalization", func(t *testing.T) {
		const body = `{"casts":[{"hash":"0x1"},{"hash":"0x2"},{"hash":"0x3"}]}`
		u := newUpstream(map[string]reply{"/feed": {body: body}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingFeed(t.Context(), social.TrendingOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
	t.Run("upstream failure degrades to empty", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/feed/trending": {status: http.StatusBadRequest, body: `{"message":"bad window"}`}})
		p := newTestProvider(t, u)

		got, err := p.GetTrendingFeed(t.Context(), social.TrendingOptions{Provider: social.FeedMBD, TimeWindow: "99h"})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestProvider_SearchChannels(t *testing.T) {
	const chanBody = `{"channels":[{"id":"base","name":"Base Official","description":"Building on Base. DeFi and onchain apps",
		"follower_count":50000,"image_url":"https://img","lead_fid":3,"created_at":1690000000,
		"updated_at":"2024-01-02T03:04:05Z"}],"next":{"cursor":"abc"}}`

	u := newUpstream(map[string]reply{"/channel/search": {body: chanBody}})
	p := newTestProvider(t, u)

	got, err := p.SearchChannels(t.Context(), "base", social.ChannelSearchOptions{})
	require.NoError(t, err)
	require.Len(t, got.Channels, 1)
	ch := got.Channels[0]
	assert.Equal(t, "base", ch.ID)
	assert.Equal(t, "3", ch.LeadID)
	assert.Equal(t, "abc", got.NextCursor)
	assert.Equal(t, "Official channel for platform/project updates and announcements", ch.Significance)
	assert.Equal(t, []string{"Building on base", "Defi", "Onchain apps"}, ch.FocusAreas)
	assert.Equal(t, time.Unix(1690000000, 0).UTC(), ch.CreatedAt)
	assert.Equal(t, 50000, ch.Stats.Followers)
}

func TestChannelSignificance(t *testing.T) {
	tests := []struct {
		name string
		ch   neynar.Channel
		want string
	}{
		{"official beats follower count", neynar.Channel{Name: "Degen Official", FollowerCount: 50}, "Official channel for platform/project updates and announcements"},
		{"major hub", neynar.Channel{Name: "degen", FollowerCount: 10001}, "Major community hub with significant following"},
		{"growing community", neynar.Channel{Name: "degen", FollowerCount: 1001}, "Growing community with active engagement"},
		{"well maintained", neynar.Channel{Name: "degen", FollowerCount: 10, Description: "d", ImageURL: "i"}, "Well-maintained channel with regular updates"},
		{"emerging", neynar.Channel{Name: "degen", FollowerCount: 10}, "Emerging channel in development"},
		{"boundary 10000 is not major", neynar.Channel{Name: "degen", FollowerCount: 10000}, "Growing community with active engagement"},
		{"boundary 1000 without media is emerging", neynar.Channel{Name: "degen", FollowerCount: 1000}, "Emerging channel in development"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, channelSignificance(tt.ch))
		})
	}
}

func TestProvider_SearchBulkChannels(t *testing.T) {
	// Query "a" fails upstream, query "b" succeeds. Only "a" may be empty.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "a" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"channels":[{"id":"b","name":"b","created_at":1690000000}]}`))
	}))
	t.Cleanup(srv.Close)
	cl := neynar.New("test-key",
		neynar.WithBaseURL(srv.URL),
		neynar.WithHTTPClient(srv.Client()),
		neynar.WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
	p := New("test-key", WithClient(cl))

	got, err := p.SearchBulkChannels(t.Context(), []string{"a", "b"}, social.ChannelSearchOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got["a"].Channels)
	assert.NotNil(t, got["a"].Channels)
	assert.Len(t, got["b"].Channels, 1)
}

func TestProvider_GetUserBalance(t *testing.T) {
	t.Run("resolves username then fetches balance", func(t *testing.T) {
		const body = `{"user_balance":{"object":"user_balance","address_balances":[
			{"verified_address":{"address":"0xabc","network":"base"},
			 "token_balances":[{"token":{"name":"USD Coin","symbol":"USDC"},"balance":{"in_token":"12.5","in_usdc":"12.5"}}]}]}}`
		u := newUpstream(map[string]reply{
			"/user/search":  {body: dwrSearchBody},
			"/user/balance": {body: body},
		})
		p := newTestProvider(t, u)

		got, err := p.GetUserBalance(t.Context(), "dwr")
		require.NoError(t, err)
		assert.Equal(t, "3", got.UserID)
		require.Len(t, got.Addresses, 1)
		assert.Equal(t, "0xabc", got.Addresses[0].Address)
		require.Len(t, got.Addresses[0].Tokens, 1)
		assert.Equal(t, "USDC", got.Addresses[0].Tokens[0].Symbol)
	})
	t.Run("missing balance data is an error", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/balance": {body: `{}`}})
		p := newTestProvider(t, u)

		_, err := p.GetUserBalance(t.Context(), "3")
		require.ErrorIs(t, err, social.ErrNotFound)
	})
}

func TestProvider_IsAvailable(t *testing.T) {
	stubWait(t)

	t.Run("healthy upstream", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {body: dwrBulkBody}})
		p := newTestProvider(t, u)

		assert.True(t, p.IsAvailable(t.Context()))
		assert.Equal(t, 1, u.count("/user/bulk"))
	})
	t.Run("transient errors retried three times then unavailable", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {status: http.StatusBadGateway}})
		p := newTestProvider(t, u)

		assert.False(t, p.IsAvailable(t.Context()))
		assert.Equal(t, 3, u.count("/user/bulk"))
	})
	t.Run("non-transient error fails immediately", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {status: http.StatusUnauthorized, body: `{"message":"invalid key"}`}})
		p := newTestProvider(t, u)

		assert.False(t, p.IsAvailable(t.Context()))
		assert.Equal(t, 1, u.count("/user/bulk"))
	})
	t.Run("development mode is optimistic after exhaustion", func(t *testing.T) {
		u := newUpstream(map[string]reply{"/user/bulk": {status: http.StatusServiceUnavailable}})
		p := newTestProvider(t, u, WithDevelopmentMode(true))

		assert.True(t, p.IsAvailable(t.Context()))
		assert.Equal(t, 3, u.count("/user/bulk"))
	})
	t.Run("no credential short-circuits without a network call", func(t *testing.T) {
		u := newUpstream(nil)
		srv := httptest.NewServer(u)
		t.Cleanup(srv.Close)
		cl := neynar.New("", neynar.WithBaseURL(srv.URL), neynar.WithLimiter(rate.NewLimiter(rate.Inf, 1)))
		p := New("", WithClient(cl))

		assert.False(t, p.IsAvailable(t.Context()))
		assert.Zero(t, u.total())
	})
}

// stubWait removes the probe backoff for the duration of the test.
func stubWait(t *testing.T) {
	t.Helper()
	old := probeWait
	probeWait = func(context.Context, time.Duration) {}
	t.Cleanup(func() { probeWait = old })
}

func TestProvider_missingCredential(t *testing.T) {
	// Every capability must degrade to a sentinel or error without touching
	// the network when no credential is configured.
	u := newUpstream(nil)
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)
	cl := neynar.New("", neynar.WithBaseURL(srv.URL), neynar.WithLimiter(rate.NewLimiter(rate.Inf, 1)))
	p := New("", WithClient(cl))
	ctx := t.Context()

	search, err := p.SearchContent(ctx, "gm", social.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, social.ErrorID, search[0].ID)
	assert.Contains(t, search[0].Text, "NEYNAR_API_KEY")

	profile, err := p.GetUserProfile(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, social.ErrorID, profile.ID)

	content, err := p.GetUserContent(ctx, "3", social.ContentOptions{})
	require.NoError(t, err)
	require.Len(t, content, 1)
	assert.Equal(t, social.ErrorID, content[0].ID)

	thread, err := p.GetThread(ctx, "0xaaa", social.ThreadOptions{})
	require.NoError(t, err)
	assert.Equal(t, social.ErrorID, thread.ID)
	assert.Empty(t, thread.Replies)

	topics, err := p.GetTrendingTopics(ctx, social.TrendingOptions{})
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Contains(t, topics[0], "No API key")

	feed, err := p.GetTrendingFeed(ctx, social.TrendingOptions{})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, social.ErrorID, feed[0].ID)

	_, err = p.SearchChannels(ctx, "base", social.ChannelSearchOptions{})
	require.ErrorIs(t, err, social.ErrNoCredential)

	_, err = p.SearchBulkChannels(ctx, []string{"base"}, social.ChannelSearchOptions{})
	require.ErrorIs(t, err, social.ErrNoCredential)

	_, err = p.GetUserBalance(ctx, "3")
	require.ErrorIs(t, err, social.ErrNoCredential)

	assert.Zero(t, u.total())
}

func TestExtractFocusAreas(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want []string
	}{
		{"splits on punctuation and conjunctions", "DeFi, NFTs and gaming", []string{"Defi", "Nfts", "Gaming"}},
		{"drops stopword fragments", "defi, the, gaming", []string{"Defi", "Gaming"}},
		{"empty description", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractFocusAreas(tt.desc))
		})
	}
}
