package mcp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social/mock_social"
)

// newMockProvider returns a MockProvider with Name and Platform stubbed to
// the given platform tag.
func newMockProvider(ctrl *gomock.Controller, platform string) *mock_social.MockProvider {
	m := mock_social.NewMockProvider(ctrl)
	m.EXPECT().Name().Return(platform).AnyTimes()
	m.EXPECT().Platform().Return(platform).AnyTimes()
	return m
}

// fullMock implements Provider plus every optional capability, the shape of
// a fully featured platform.  Set expectations through the embedded mocks,
// e.g. m.MockChannelSearcher.EXPECT().
type fullMock struct {
	*mock_social.MockProvider
	*mock_social.MockTrendingFeeder
	*mock_social.MockChannelSearcher
	*mock_social.MockBalanceProvider
}

func newFullMock(ctrl *gomock.Controller, platform string) *fullMock {
	return &fullMock{
		MockProvider:        newMockProvider(ctrl, platform),
		MockTrendingFeeder:  mock_social.NewMockTrendingFeeder(ctrl),
		MockChannelSearcher: mock_social.NewMockChannelSearcher(ctrl),
		MockBalanceProvider: mock_social.NewMockBalanceProvider(ctrl),
	}
}

// newTestServer creates a *Server over a registry holding the given
// providers, with logging discarded.
func newTestServer(t *testing.T, providers ...social.Provider) *Server {
	t.Helper()
	lg := slog.New(slog.DiscardHandler)
	srv := New(social.NewRegistry(lg, providers...), lg)
	require.NotNil(t, srv)
	return srv
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// ─── New ──────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, newMockProvider(ctrl, "farcaster"))
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.reg)
	assert.NotNil(t, srv.logger)
}

func TestNew_nilLogger(t *testing.T) {
	// A nil logger must not panic and must fall back to slog.Default().
	assert.NotPanics(t, func() {
		srv := New(social.NewRegistry(nil), nil)
		assert.NotNil(t, srv.logger)
	})
}

func TestInstructions(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := social.NewRegistry(slog.New(slog.DiscardHandler),
		newMockProvider(ctrl, "farcaster"),
		newMockProvider(ctrl, "twitter"),
	)
	got := instructions(reg)
	assert.Contains(t, got, "farcaster, twitter")
	assert.Contains(t, got, "read-only")
}

// ─── provider resolution ──────────────────────────────────────────────────────

func TestProvider_caseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMockProvider(ctrl, "farcaster")
	srv := newTestServer(t, m)

	for _, platform := range []string{"farcaster", "Farcaster", "FARCASTER"} {
		p, err := srv.provider(platform)
		require.NoError(t, err, platform)
		assert.Equal(t, "farcaster", p.Platform())
	}
}

func TestProvider_notFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, newMockProvider(ctrl, "farcaster"))

	_, err := srv.provider("myspace")
	require.Error(t, err)
	assert.Equal(t, "Provider for platform 'myspace' not found or not enabled", err.Error())
}

// ─── healthcheck ──────────────────────────────────────────────────────────────

func TestHandleHealthcheck(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealthcheck(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, serverVersion, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

// ─── argument helpers ─────────────────────────────────────────────────────────

func TestStringArg(t *testing.T) {
	req := toolReq(map[string]any{"platform": "farcaster", "limit": float64(5)})

	v, ok := stringArg(req, "platform")
	assert.True(t, ok)
	assert.Equal(t, "farcaster", v)

	_, ok = stringArg(req, "missing")
	assert.False(t, ok)

	_, ok = stringArg(req, "limit") // wrong type
	assert.False(t, ok)

	_, ok = stringArg(toolReq(nil), "platform")
	assert.False(t, ok)
}

func TestIntArg(t *testing.T) {
	req := toolReq(map[string]any{"limit": float64(42), "name": "x"})

	assert.Equal(t, 42, intArg(req, "limit", 10))
	assert.Equal(t, 10, intArg(req, "missing", 10))
	assert.Equal(t, 10, intArg(req, "name", 10)) // wrong type
	assert.Equal(t, 10, intArg(toolReq(nil), "limit", 10))
}

func TestStringSliceArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"json array", map[string]any{"queries": []any{"a", "b"}}, []string{"a", "b"}},
		{"array with non-strings", map[string]any{"queries": []any{"a", 1.0, ""}}, []string{"a"}},
		{"comma separated", map[string]any{"queries": "a, b"}, []string{"a", "b"}},
		{"empty string", map[string]any{"queries": ""}, nil},
		{"missing", map[string]any{}, nil},
		{"nil args", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringSliceArg(toolReq(tt.args), "queries"))
		})
	}
}
