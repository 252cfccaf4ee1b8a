package neynar

// In this file: the global filter feed and the multi-provider trending feed
// endpoints.

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Feed filter constants for [Client.Feed].
const (
	FeedTypeFilter       = "filter"
	FilterGlobalTrending = "global_trending"
)

// FeedResponse is the response of the filter feed endpoint.
type FeedResponse struct {
	Casts []Cast `json:"casts"`
	Next  Next   `json:"next"`
}

// Feed fetches the global trending filter feed.
func (c *Client) Feed(ctx context.Context, limit int) (*FeedResponse, error) {
	v := url.Values{
		"feed_type":   {FeedTypeFilter},
		"filter_type": {FilterGlobalTrending},
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp FeedResponse
	if err := c.get(ctx, "/feed", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrendingFeedOpts parameterizes [Client.TrendingFeed].  Provider and
// TimeWindow are passed through verbatim; the endpoint validates them
// upstream.  Filters, when non-empty, is serialized as the mbd
// provider_metadata query parameter.
type TrendingFeedOpts struct {
	Limit      int
	Provider   string
	TimeWindow string
	Filters    map[string]any
}

// trendingFeedResponse tolerates both response shapes of the trending
// endpoint: alternative ranking providers nest the casts under "result".
type trendingFeedResponse struct {
	Casts  []Cast `json:"casts"`
	Result struct {
		Casts []Cast `json:"casts"`
	} `json:"result"`
}

func (r *trendingFeedResponse) casts() []Cast {
	if len(r.Casts) > 0 {
		return r.Casts
	}
	return r.Result.Casts
}

// TrendingFeed fetches the trending feed from an alternative ranking
// provider.  The response shape differs between providers; the returned
// slice is already normalized.
func (c *Client) TrendingFeed(ctx context.Context, opts TrendingFeedOpts) ([]Cast, error) {
	v := url.Values{}
	if opts.Limit > 0 {
		v.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Provider != "" {
		v.Set("provider", opts.Provider)
	}
	if opts.TimeWindow != "" {
		v.Set("time_window", opts.TimeWindow)
	}
	if len(opts.Filters) > 0 {
		meta, err := json.Marshal(map[string]any{"filters": opts.Filters})
		if err != nil {
			return nil, err
		}
		v.Set("provider_metadata", string(meta))
	}
	var resp trendingFeedResponse
	if err := c.get(ctx, "/feed/trending", v, &resp); err != nil {
		return nil, err
	}
	return resp.casts(), nil
}
