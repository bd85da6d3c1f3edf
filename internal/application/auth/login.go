package auth

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
)

const (
	DefaultAccessTokenExpiry  = 300   // 5 min
	DefaultRefreshTokenExpiry = 86400 // 1 day
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresIn  int64
	RefreshExpiresIn int64
	User             *domain.User
}

// Login verifies credentials and mints the access/refresh token pair.
type Login struct {
	users      ports.UserRepository
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	accessExp  int64
	refreshExp int64
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, accessExp, refreshExp int64) *Login {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	if refreshExp <= 0 {
		refreshExp = DefaultRefreshTokenExpiry
	}
	return &Login{
		users:      users,
		hasher:     hasher,
		issuer:     issuer,
		accessExp:  accessExp,
		refreshExp: refreshExp,
	}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password are indistinguishable to the caller.
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	accessToken, err := uc.issuer.IssueAccessToken(user.Username, user.ID.String(), uc.accessExp)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.issuer.IssueRefreshToken(user.Username, user.ID.String(), uc.refreshExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresIn:  uc.accessExp,
		RefreshExpiresIn: uc.refreshExp,
		User:             user,
	}, nil
}
