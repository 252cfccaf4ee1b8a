package neynar

// In this file: wire types shared across endpoints.

import (
	"encoding/json"
	"time"
)

// User is a Farcaster user record.
type User struct {
	FID               int64             `json:"fid"`
	Username          string            `json:"username"`
	DisplayName       string            `json:"display_name"`
	PfpURL            string            `json:"pfp_url"`
	Profile           UserProfileBlock  `json:"profile"`
	FollowerCount     int               `json:"follower_count"`
	FollowingCount    int               `json:"following_count"`
	Verifications     []string          `json:"verifications"`
	VerifiedAddresses VerifiedAddresses `json:"verified_addresses"`
	CustodyAddress    string            `json:"custody_address"`
	RecoveryAddress   string            `json:"recovery_address"`
	ActiveStatus      string            `json:"active_status"`
	PowerBadge        bool              `json:"power_badge"`
	HasEmail          bool              `json:"has_email"`
}

// UserProfileBlock holds the nested profile section of a user record.
type UserProfileBlock struct {
	Bio Bio `json:"bio"`
}

// Bio is the user's biography.
type Bio struct {
	Text string `json:"text"`
}

// VerifiedAddresses lists a user's verified on-chain addresses.
type VerifiedAddresses struct {
	EthAddresses []string `json:"eth_addresses"`
	SolAddresses []string `json:"sol_addresses"`
}

// Cast is a single Farcaster cast.  DirectReplies is only populated in
// conversation responses.
type Cast struct {
	Hash              string            `json:"hash"`
	ThreadHash        string            `json:"thread_hash"`
	ParentHash        string            `json:"parent_hash"`
	Text              string            `json:"text"`
	Timestamp         time.Time         `json:"timestamp"`
	Author            User              `json:"author"`
	Reactions         Reactions         `json:"reactions"`
	Replies           ReplyCount        `json:"replies"`
	Embeds            []json.RawMessage `json:"embeds"`
	MentionedProfiles []User            `json:"mentioned_profiles"`
	DirectReplies     []Cast            `json:"direct_replies"`
}

// Reactions holds a cast's engagement counters.
type Reactions struct {
	LikesCount   int `json:"likes_count"`
	RecastsCount int `json:"recasts_count"`
}

// ReplyCount holds a cast's reply counter.
type ReplyCount struct {
	Count int `json:"count"`
}

// Channel is a Farcaster channel record.  CreatedAt is a unix timestamp in
// seconds; UpdatedAt, when present, is an RFC 3339 string.
type Channel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	FollowerCount int    `json:"follower_count"`
	ParentURL     string `json:"parent_url"`
	ImageURL      string `json:"image_url"`
	LeadFID       int64  `json:"lead_fid"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Next carries the pagination cursor of a paged response.
type Next struct {
	Cursor string `json:"cursor"`
}
