package farcaster

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// GetUserBalance implements social.BalanceProvider.  It resolves the user to
// a FID and fetches their token balances on the Base network.  Unlike the
// search-style operations this is a direct lookup: missing credential and
// resolution failures are errors.
func (p *Provider) GetUserBalance(ctx context.Context, userID string) (*social.Balance, error) {
	if !p.hasKey() {
		return nil, fmt.Errorf("get Farcaster user balance: %w", social.ErrNoCredential)
	}
	fid, err := p.resolveFID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ub, err := p.client.FetchUserBalance(ctx, fid, []string{neynar.NetworkBase})
	if err != nil {
		return nil, fmt.Errorf("fetch balance for fid %d: %w", fid, err)
	}
	if ub == nil {
		return nil, fmt.Errorf("balance for user %q: %w", userID, social.ErrNotFound)
	}

	bal := &social.Balance{
		UserID:    strconv.FormatInt(fid, 10),
		Platform:  PlatformName,
		Addresses: make([]social.AddressBalance, 0, len(ub.AddressBalances)),
	}
	for _, ab := range ub.AddressBalances {
		addr := social.AddressBalance{
			Address: ab.VerifiedAddress.Address,
			Network: ab.VerifiedAddress.Network,
			Tokens:  make([]social.TokenBalance, 0, len(ab.TokenBalances)),
		}
		for _, tb := range ab.TokenBalances {
			addr.Tokens = append(addr.Tokens, social.TokenBalance{
				Name:    tb.Token.Name,
				Symbol:  tb.Token.Symbol,
				InToken: tb.Balance.InToken,
				InUSDC:  tb.Balance.InUSDC,
			})
		}
		bal.Addresses = append(bal.Addresses, addr)
	}
	return bal, nil
}
