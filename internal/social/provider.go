package social

// In this file: the provider contract and optional capability interfaces.

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination mock_social/mock_social.go -package mock_social . Provider,TrendingFeeder,ChannelSearcher,BalanceProvider

var (
	// ErrNotFound is returned by direct lookups (profile, balance) when the
	// user or entity cannot be resolved upstream.  Search-style operations
	// degrade to an empty result instead of returning it.
	ErrNotFound = errors.New("not found")
	// ErrNotImplemented is returned by stub providers for direct lookups.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoCredential is returned by operations that cannot produce a
	// sentinel value (e.g. balance lookup) when the provider credential is
	// missing.
	ErrNoCredential = errors.New("no API credential configured")
)

// Provider is the capability set every platform implementation must satisfy.
//
// Error discipline is deliberately asymmetric: direct lookups
// (GetUserProfile, GetUserContent with an unresolvable user) return errors,
// while search-style and best-effort operations (SearchContent,
// GetTrendingTopics, GetThread) degrade to empty or sentinel values and
// return a nil error.  A failed author lookup during a search is not fatal to
// returning an answer, only to returning that specific user's answer.
// Callers rely on this behaviour; do not unify it.
type Provider interface {
	// Name is the registry key for this provider.
	Name() string
	// Platform is the platform tag stamped on every produced entity.
	Platform() string

	// IsAvailable reports whether the upstream service is reachable with the
	// configured credential.  It never returns an error; transient upstream
	// failures are retried internally with bounded backoff.
	IsAvailable(ctx context.Context) bool

	// SearchContent searches platform content.  Upstream failures degrade to
	// an empty slice.  A missing credential yields a single sentinel item
	// (ID == ErrorID) carrying the error message.
	SearchContent(ctx context.Context, query string, opt SearchOptions) ([]Content, error)

	// GetUserProfile resolves userID (a native numeric id as a digit string,
	// or a platform username) to a profile.  Returns an error wrapping
	// ErrNotFound when the user cannot be resolved.
	GetUserProfile(ctx context.Context, userID string) (Profile, error)

	// GetUserProfileByWalletAddress resolves a profile via an address
	// reverse-lookup.  Platforms without a wallet concept return the
	// sentinel profile from UnsupportedProfile rather than an error.
	GetUserProfileByWalletAddress(ctx context.Context, address string) (Profile, error)

	// GetUserContent returns the user's recent content, using the same
	// userID disambiguation rule as GetUserProfile.
	GetUserContent(ctx context.Context, userID string, opt ContentOptions) ([]Content, error)

	// GetThread fetches a root item and its replies, flattened to one level
	// of nesting.  On total failure it returns a renderable thread whose
	// root text carries the error, with a nil error.
	GetThread(ctx context.Context, threadID string, opt ThreadOptions) (Thread, error)

	// GetTrendingTopics returns an ordered list of trending topic strings,
	// degrading to a fixed fallback set when no topics can be derived.
	GetTrendingTopics(ctx context.Context, opt TrendingOptions) ([]string, error)
}

// TrendingFeeder is an optional capability: a distinct trending content feed,
// possibly sourced from alternative ranking providers.  Platforms without the
// concept simply do not implement it; callers must feature-test with a type
// assertion and fall back to Provider.GetTrendingTopics.
type TrendingFeeder interface {
	GetTrendingFeed(ctx context.Context, opt TrendingOptions) ([]Content, error)
}

// ChannelSearcher is an optional capability for platforms with a channel
// concept.
type ChannelSearcher interface {
	// SearchChannels searches channels for a single query.
	SearchChannels(ctx context.Context, query string, opt ChannelSearchOptions) (ChannelPage, error)
	// SearchBulkChannels issues one search per query in parallel.  A failure
	// on one query is recorded as an empty page for that query only; it
	// never fails sibling queries or the aggregate call.
	SearchBulkChannels(ctx context.Context, queries []string, opt ChannelSearchOptions) (map[string]ChannelPage, error)
}

// BalanceProvider is an optional capability for platforms with an on-chain
// identity linkage.
type BalanceProvider interface {
	GetUserBalance(ctx context.Context, userID string) (*Balance, error)
}

// ErrorContent builds the sentinel content item that list-returning
// operations use to surface a user-visible error when no credential is
// configured.
func ErrorContent(platform, text string) Content {
	return Content{
		ID:             ErrorID,
		Text:           text,
		AuthorID:       "system",
		AuthorName:     "System",
		AuthorUsername: "system",
		CreatedAt:      time.Now().UTC(),
		Platform:       platform,
		Metadata:       map[string]any{"error": "missing_api_key"},
	}
}

// ErrorProfile builds the sentinel profile returned by profile lookups when
// no credential is configured.
func ErrorProfile(platform, msg string) Profile {
	return Profile{
		ID:          ErrorID,
		DisplayName: "Error",
		Username:    ErrorID,
		Bio:         msg,
		Platform:    platform,
		Metadata:    map[string]any{"error": "missing_api_key"},
	}
}

// ErrorThread builds the sentinel thread returned by GetThread when no
// credential is configured.
func ErrorThread(platform, msg string) Thread {
	return Thread{
		ID:       ErrorID,
		Content:  ErrorContent(platform, msg),
		Replies:  []Content{},
		Platform: platform,
		Metadata: map[string]any{"error": "missing_api_key"},
	}
}

// UnsupportedProfile builds the sentinel profile returned by polymorphic
// operations a platform has no concept of, such as wallet-based lookup on
// platforms without on-chain identities.  Returning a tagged value instead of
// an error keeps the capability polymorphic across platforms.
func UnsupportedProfile(platform, msg string) Profile {
	return Profile{
		ID:          UnsupportedID,
		DisplayName: "Unsupported",
		Username:    UnsupportedID,
		Bio:         msg,
		Platform:    platform,
		Metadata: map[string]any{
			"error":   "unsupported_operation",
			"message": msg,
		},
	}
}
