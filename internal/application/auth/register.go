package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
)

const (
	MsgUsernameTaken = "Un utilisateur avec ce nom existe déjà."
	MsgEmailTaken    = "Un utilisateur avec cet email existe déjà."
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

type RegisterResult struct {
	User *domain.User
}

// RegisterUser creates an account after enforcing the password policy.
type RegisterUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if input.Password != input.PasswordConfirm {
		return nil, domerrors.NewValidationError("password", MsgPasswordMismatch)
	}
	if msgs := ValidatePassword(input.Password); len(msgs) > 0 {
		return nil, domerrors.NewValidationError("password", msgs...)
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, domerrors.ErrUsernameTaken):
			return nil, domerrors.NewValidationError("username", MsgUsernameTaken)
		case errors.Is(err, domerrors.ErrEmailTaken):
			return nil, domerrors.NewValidationError("email", MsgEmailTaken)
		}
		return nil, err
	}
	return &RegisterResult{User: user}, nil
}
