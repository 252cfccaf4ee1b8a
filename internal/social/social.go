// Package social defines the normalized content model shared by all platform
// providers, the provider contract, and the provider registry that resolves a
// platform name to a provider instance.
package social

// In this file: the normalized value types that every provider produces.

import "time"

// ErrorID is the reserved content/thread identifier used to carry a
// user-visible error payload, for example when a provider has no credential.
// It is the only identifier that is allowed to not originate upstream.
const ErrorID = "error"

// UnsupportedID is the reserved profile identifier returned by providers for
// operations their platform has no concept of (see [UnsupportedProfile]).
const UnsupportedID = "unsupported"

// Content is a single normalized unit of platform content (a cast, tweet or
// message) with author and engagement metadata.  Engagement counters default
// to zero when the upstream response omits them.
type Content struct {
	ID             string         `json:"id"`
	Text           string         `json:"text"`
	AuthorID       string         `json:"authorId"`
	AuthorName     string         `json:"authorName,omitempty"`
	AuthorUsername string         `json:"authorUsername,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	Platform       string         `json:"platform"`
	ReplyToID      string         `json:"replyToId,omitempty"`
	ThreadID       string         `json:"threadId,omitempty"`
	Likes          int            `json:"likes"`
	Reposts        int            `json:"reposts"`
	Replies        int            `json:"replies"`
	URL            string         `json:"url,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Profile is a normalized user profile.  ID is the provider-native stable
// identifier (e.g. a numeric account id rendered as a string), which is
// distinct from Username: usernames may be reassigned upstream.
type Profile struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"displayName,omitempty"`
	Username        string         `json:"username,omitempty"`
	Bio             string         `json:"bio,omitempty"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	FollowerCount   int            `json:"followerCount"`
	FollowingCount  int            `json:"followingCount"`
	Platform        string         `json:"platform"`
	Verified        bool           `json:"verified"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Thread is a root content item plus its reply tree flattened to the root and
// one level of nested replies, in breadth-first order.  Replies is never nil:
// it is empty when there are no replies or when the reply fetch failed.
type Thread struct {
	ID       string         `json:"id"`
	Content  Content        `json:"content"`
	Replies  []Content      `json:"replies"`
	Platform string         `json:"platform"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Channel is a platform community/topic grouping, distinct from a user
// account.  FocusAreas and Significance are derived locally from the upstream
// record (see the farcaster provider for the classification rules).
type Channel struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	FollowerCount int            `json:"followerCount"`
	ParentURL     string         `json:"parentUrl,omitempty"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	LeadID        string         `json:"leadId,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	FocusAreas    []string       `json:"focusAreas,omitempty"`
	Stats         CommunityStats `json:"communityStats"`
	Significance  string         `json:"significance,omitempty"`
}

// CommunityStats summarises a channel's community for display.
type CommunityStats struct {
	Followers   int       `json:"followers"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// ChannelPage is one page of channel search results.  Channels is never nil.
// NextCursor is an opaque pagination cursor; empty means no further pages.
type ChannelPage struct {
	Channels   []Channel `json:"channels"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

// Balance is an on-chain token balance report for a platform user, keyed by
// their verified addresses.
type Balance struct {
	UserID    string           `json:"userId"`
	Platform  string           `json:"platform"`
	Addresses []AddressBalance `json:"addresses"`
}

// AddressBalance lists token balances held by a single verified address.
type AddressBalance struct {
	Address string         `json:"address"`
	Network string         `json:"network"`
	Tokens  []TokenBalance `json:"tokens"`
}

// TokenBalance is the balance of one token on one address.
type TokenBalance struct {
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	InToken string `json:"inToken,omitempty"`
	InUSDC  string `json:"inUsdc,omitempty"`
}

// SortBy values accepted by [SearchOptions].
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

// SearchOptions modifies content search behaviour.
type SearchOptions struct {
	Limit          int
	IncludeReplies bool
	StartTime      time.Time
	EndTime        time.Time
	SortBy         string
}

// ContentOptions modifies per-user content retrieval.
type ContentOptions struct {
	Limit          int
	Cursor         string
	IncludeReplies bool
	ContentTypes   []string
}

// ThreadOptions modifies thread retrieval.
type ThreadOptions struct {
	Limit       int
	IncludeRoot bool
}

// FeedProvider selects the upstream ranking service for trending feeds.
// Unrecognized values are passed through to the upstream call verbatim; a
// resulting upstream error surfaces as an empty result, not a failure.
type FeedProvider string

const (
	FeedNeynar   FeedProvider = "neynar" // default
	FeedOpenRank FeedProvider = "openrank"
	FeedMBD      FeedProvider = "mbd"
)

// TimeWindow is the trending aggregation window.  As with [FeedProvider],
// unrecognized values are passed through verbatim.
type TimeWindow string

const (
	Window1h  TimeWindow = "1h"
	Window6h  TimeWindow = "6h"
	Window12h TimeWindow = "12h"
	Window24h TimeWindow = "24h" // default
	Window7d  TimeWindow = "7d"
)

// TrendingOptions modifies trending topic/feed retrieval.  Metadata carries
// provider-specific filters (e.g. "startTimestamp"/"endTimestamp" bounds for
// the mbd provider) that are forwarded to the upstream call.
type TrendingOptions struct {
	Limit      int
	Category   string
	Location   string
	Provider   FeedProvider
	TimeWindow TimeWindow
	Metadata   map[string]any
}

// ChannelSearchOptions modifies channel search.  IncludeChannels is a
// tri-state: nil leaves the upstream default in place.
type ChannelSearchOptions struct {
	Limit           int
	Cursor          string
	IncludeChannels *bool
}
