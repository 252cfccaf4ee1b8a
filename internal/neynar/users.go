package neynar

// In this file: user search, bulk lookup and address reverse-lookup
// endpoints.

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchUsersResponse is the response of the user search endpoint.
type SearchUsersResponse struct {
	Result struct {
		Users []User `json:"users"`
		Next  Next   `json:"next"`
	} `json:"result"`
}

// SearchUsers searches users by username or display name.
func (c *Client) SearchUsers(ctx context.Context, q string, limit int) (*SearchUsersResponse, error) {
	v := url.Values{"q": {q}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var resp SearchUsersResponse
	if err := c.get(ctx, "/user/search", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BulkUsersResponse is the response of the bulk user lookup endpoint.
type BulkUsersResponse struct {
	Users []User `json:"users"`
}

// UsersByFID fetches users by their FIDs.
func (c *Client) UsersByFID(ctx context.Context, fids []int64) (*BulkUsersResponse, error) {
	ss := make([]string, len(fids))
	for i, fid := range fids {
		ss[i] = strconv.FormatInt(fid, 10)
	}
	v := url.Values{"fids": {strings.Join(ss, ",")}}
	var resp BulkUsersResponse
	if err := c.get(ctx, "/user/bulk", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UsersByAddress reverse-looks-up users by verified ETH or SOL address.  The
// response maps each (lowercased) address to the users that verified it.
func (c *Client) UsersByAddress(ctx context.Context, addresses []string) (map[string][]User, error) {
	v := url.Values{"addresses": {strings.Join(addresses, ",")}}
	resp := make(map[string][]User)
	if err := c.get(ctx, "/user/bulk-by-address", v, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
