package auth

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken     string
	AccessExpiresIn int64
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated and stays valid until expiry; logout performs
// no server-side revocation either.
type Refresh struct {
	issuer    ports.TokenIssuer
	accessExp int64
}

func NewRefresh(issuer ports.TokenIssuer, accessExp int64) *Refresh {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	return &Refresh{issuer: issuer, accessExp: accessExp}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	if input.RefreshToken == "" {
		return nil, errors.ErrInvalidToken
	}
	username, userID, err := uc.issuer.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}
	accessToken, err := uc.issuer.IssueAccessToken(username, userID, uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken:     accessToken,
		AccessExpiresIn: uc.accessExp,
	}, nil
}
