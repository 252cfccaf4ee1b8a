package neynar

// In this file: the channel search endpoint.

import (
	"context"
	"net/url"
	"strconv"
)

// ChannelSearchReq parameterizes [Client.SearchChannels].  IncludeChannels
// is tri-state: nil leaves the upstream default.
type ChannelSearchReq struct {
	Limit           int
	Cursor          string
	IncludeChannels *bool
}

// ChannelsResponse is the response of the channel search endpoint.
type ChannelsResponse struct {
	Channels []Channel `json:"channels"`
	Next     Next      `json:"next"`
}

// SearchChannels searches channels by name.
func (c *Client) SearchChannels(ctx context.Context, q string, req ChannelSearchReq) (*ChannelsResponse, error) {
	v := url.Values{"q": {q}}
	if req.Limit > 0 {
		v.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Cursor != "" {
		v.Set("cursor", req.Cursor)
	}
	if req.IncludeChannels != nil {
		v.Set("include_channels", strconv.FormatBool(*req.IncludeChannels))
	}
	var resp ChannelsResponse
	if err := c.get(ctx, "/channel/search", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
