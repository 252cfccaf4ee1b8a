package neynar

// In this file: the user balance endpoint.

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// NetworkBase is currently the only network supported by the balance
// endpoint.
const NetworkBase = "base"

// UserBalance is the balance report of the balance endpoint.
type UserBalance struct {
	Object          string           `json:"object"`
	User            User             `json:"user"`
	AddressBalances []AddressBalance `json:"address_balances"`
}

// AddressBalance lists token balances of one verified address.
type AddressBalance struct {
	VerifiedAddress VerifiedAddress `json:"verified_address"`
	TokenBalances   []TokenBalance  `json:"token_balances"`
}

// VerifiedAddress identifies the address and network a balance belongs to.
type VerifiedAddress struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// TokenBalance is one token position.
type TokenBalance struct {
	Token   Token        `json:"token"`
	Balance TokenAmounts `json:"balance"`
}

// Token describes the token of a balance entry.
type Token struct {
	Object string `json:"object"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// TokenAmounts is a balance in token units and USDC.
type TokenAmounts struct {
	InToken string `json:"in_token"`
	InUSDC  string `json:"in_usdc"`
}

// balanceResponse is the envelope of the balance endpoint.
type balanceResponse struct {
	UserBalance *UserBalance `json:"user_balance"`
}

// FetchUserBalance fetches the token balances of a user's verified
// addresses on the given networks.
func (c *Client) FetchUserBalance(ctx context.Context, fid int64, networks []string) (*UserBalance, error) {
	v := url.Values{
		"fid":      {strconv.FormatInt(fid, 10)},
		"networks": {strings.Join(networks, ",")},
	}
	var resp balanceResponse
	if err := c.get(ctx, "/user/balance", v, &resp); err != nil {
		return nil, err
	}
	return resp.UserBalance, nil
}
