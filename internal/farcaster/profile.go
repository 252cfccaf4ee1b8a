package farcaster

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/neynar"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

// GetUserProfile implements social.Provider.  A numeric userID is fetched
// directly as a FID, anything else goes through single-result user search.
// Returns an error wrapping social.ErrNotFound when the user cannot be
// resolved.
func (p *Provider) GetUserProfile(ctx context.Context, userID string) (social.Profile, error) {
	if !p.hasKey() {
		return social.ErrorProfile(PlatformName, noKeyMsg("get Farcaster user profile")), nil
	}

	var user *neynar.User
	if fidRe.MatchString(userID) {
		fid, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			return social.Profile{}, fmt.Errorf("parse fid %q: %w", userID, err)
		}
		resp, err := p.client.UsersByFID(ctx, []int64{fid})
		if err != nil {
			return social.Profile{}, fmt.Errorf("fetch profile for %q: %w", userID, err)
		}
		if len(resp.Users) > 0 {
			user = &resp.Users[0]
		}
	} else {
		resp, err := p.client.SearchUsers(ctx, userID, 1)
		if err != nil {
			return social.Profile{}, fmt.Errorf("fetch profile for %q: %w", userID, err)
		}
		if len(resp.Result.Users) > 0 {
			user = &resp.Result.Users[0]
		}
	}
	if user == nil {
		return social.Profile{}, fmt.Errorf("user %q: %w", userID, social.ErrNotFound)
	}
	return p.userToProfile(*user), nil
}

// GetUserProfileByWalletAddress implements social.Provider.  It reverse-looks
// up the address and, when several accounts share it, prefers the most
// complete profile: one with a username that is not a "!<fid>" placeholder.
func (p *Provider) GetUserProfileByWalletAddress(ctx context.Context, address string) (social.Profile, error) {
	if !p.hasKey() {
		return social.ErrorProfile(PlatformName, noKeyMsg("get Farcaster user profile")), nil
	}
	byAddr, err := p.client.UsersByAddress(ctx, []string{address})
	if err != nil {
		return social.Profile{}, fmt.Errorf("fetch profile for address %q: %w", address, err)
	}
	users := byAddr[strings.ToLower(address)]
	if len(users) == 0 {
		return social.Profile{}, fmt.Errorf("wallet address %q: %w", address, social.ErrNotFound)
	}
	user := users[0]
	for _, u := range users {
		if u.Username != "" && !strings.HasPrefix(u.Username, "!") {
			user = u
			break
		}
	}
	return p.userToProfile(user), nil
}

// userToProfile normalizes an upstream user record, lifting wallet and
// verification details into the profile metadata.
func (p *Provider) userToProfile(user neynar.User) social.Profile {
	eth := user.VerifiedAddresses.EthAddresses
	sol := user.VerifiedAddresses.SolAddresses

	displayName := user.DisplayName
	if displayName == "" {
		displayName = user.Username
	}
	md := map[string]any{
		"verifications":        user.Verifications,
		"verifiedEthAddresses": eth,
		"verifiedSolAddresses": sol,
		"custodyAddress":       user.CustodyAddress,
		"recoveryAddress":      user.RecoveryAddress,
		"activeStatus":         user.ActiveStatus,
		"powerBadge":           user.PowerBadge,
		"hasEmail":             user.HasEmail,
	}
	if len(eth) > 0 {
		md["primaryEthAddress"] = eth[0]
	}
	if len(sol) > 0 {
		md["primarySolAddress"] = sol[0]
	}
	return social.Profile{
		ID:              strconv.FormatInt(user.FID, 10),
		DisplayName:     displayName,
		Username:        user.Username,
		Bio:             user.Profile.Bio.Text,
		ProfileImageURL: user.PfpURL,
		FollowerCount:   user.FollowerCount,
		FollowingCount:  user.FollowingCount,
		Platform:        PlatformName,
		Verified:        len(eth) > 0 || len(user.Verifications) > 0,
		Metadata:        md,
	}
}
