package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jblavisse/scriptalium/internal/domain"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
)

type stubUserRepo struct {
	created   []*domain.User
	createErr error
	byName    map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, user)
	return nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.byName[username], nil
}

func (r *stubUserRepo) GetByID(_ context.Context, _ domain.UserID) (*domain.User, error) {
	return nil, nil
}

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Verify(password, hash string) bool    { return "hashed:"+password == hash }

func TestRegisterUser(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewRegisterUser(repo, stubHasher{})

	result, err := uc.Execute(context.Background(), RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Abcdefg1!",
		PasswordConfirm: "Abcdefg1!",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "hashed:Abcdefg1!", result.User.PasswordHash)
	require.Len(t, repo.created, 1)
}

func TestRegisterUserPasswordMismatch(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewRegisterUser(repo, stubHasher{})

	_, err := uc.Execute(context.Background(), RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Abcdefg1!",
		PasswordConfirm: "Autre1!mdp",
	})
	var verr *domerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{MsgPasswordMismatch}, verr.Fields["password"])
	assert.Empty(t, repo.created)
}

func TestRegisterUserWeakPassword(t *testing.T) {
	repo := &stubUserRepo{}
	uc := NewRegisterUser(repo, stubHasher{})

	_, err := uc.Execute(context.Background(), RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "abc",
		PasswordConfirm: "abc",
	})
	var verr *domerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields["password"], 4)
	assert.Empty(t, repo.created)
}

func TestRegisterUserConflicts(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		field     string
		want      string
	}{
		{"username taken", domerrors.ErrUsernameTaken, "username", MsgUsernameTaken},
		{"email taken", domerrors.ErrEmailTaken, "email", MsgEmailTaken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubUserRepo{createErr: tc.createErr}
			uc := NewRegisterUser(repo, stubHasher{})

			_, err := uc.Execute(context.Background(), RegisterInput{
				Username:        "alice",
				Email:           "alice@example.com",
				Password:        "Abcdefg1!",
				PasswordConfirm: "Abcdefg1!",
			})
			var verr *domerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{tc.want}, verr.Fields[tc.field])
		})
	}
}
