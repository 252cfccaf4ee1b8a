package neynar

// In this file: cast search, per-user feed, single-cast lookup and
// conversation endpoints.

import (
	"context"
	"net/url"
	"strconv"
)

// CastKind discriminates the identifier accepted by [Client.LookupCast] and
// [Client.Conversation].
type CastKind string

const (
	// ByHash identifies a cast by its 0x-prefixed hash.
	ByHash CastKind = "hash"
	// ByURL identifies a cast by its canonical Warpcast URL.
	ByURL CastKind = "url"
)

// SearchCastsResponse is the response of the cast search endpoint.
type SearchCastsResponse struct {
	Result struct {
		Casts []Cast `json:"casts"`
		Next  Next   `json:"next"`
	} `json:"result"`
}

// SearchCasts searches casts by free text.
func (c *Client) SearchCasts(ctx context.Context, q string, limit int) (*SearchCastsResponse, error) {
	v := url.Values{"q": {q}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp SearchCastsResponse
	if err := c.get(ctx, "/cast/search", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserCastsResponse is the response of the per-user cast feed endpoint.
type UserCastsResponse struct {
	Casts []Cast `json:"casts"`
	Next  Next   `json:"next"`
}

// CastsByFID fetches the recent casts authored by fid.  cursor may be empty.
func (c *Client) CastsByFID(ctx context.Context, fid int64, limit int, cursor string) (*UserCastsResponse, error) {
	v := url.Values{"fid": {strconv.FormatInt(fid, 10)}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	var resp UserCastsResponse
	if err := c.get(ctx, "/feed/user/casts", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CastResponse is the response of the single-cast lookup endpoint.
type CastResponse struct {
	Cast Cast `json:"cast"`
}

// LookupCast fetches a single cast by hash or canonical Warpcast URL.
func (c *Client) LookupCast(ctx context.Context, identifier string, kind CastKind) (*CastResponse, error) {
	v := url.Values{
		"identifier": {identifier},
		"type":       {string(kind)},
	}
	var resp CastResponse
	if err := c.get(ctx, "/cast", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConversationResponse is the response of the conversation endpoint.  The
// root cast carries its direct replies, each of which may carry one further
// level of nested direct replies.
type ConversationResponse struct {
	Conversation struct {
		Cast Cast `json:"cast"`
	} `json:"conversation"`
}

// Conversation fetches the reply tree of a cast.
func (c *Client) Conversation(ctx context.Context, identifier string, kind CastKind, limit int) (*ConversationResponse, error) {
	v := url.Values{
		"identifier": {identifier},
		"type":       {string(kind)},
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp ConversationResponse
	if err := c.get(ctx, "/cast/conversation", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
