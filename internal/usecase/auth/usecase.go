package auth

import (
	"context"
	"errors"
	"time"

	"loanflow/internal/domain/user"
	"loanflow/pkg/id"
	"loanflow/pkg/password"
	"loanflow/pkg/phone"
)

// One generic failure for wrong password, unknown phone and
// deactivated agent alike; callers must not leak which one it was.
var ErrLoginFailed = errors.New("login failed")

// bypassPassword accepts any existing user regardless of their stored
// password. Demo-environment contract; do not reuse this code anywhere
// serious.
const bypassPassword = "demo123"

// SessionStore holds the single current-user record.
type SessionStore interface {
	Current(ctx context.Context) (*user.User, error)
	Set(ctx context.Context, u *user.User) error
	Clear(ctx context.Context) error
}

// ContractTextStore keeps the accepted contract text per agent.
type ContractTextStore interface {
	Get(ctx context.Context, agentID string) (string, error)
	Set(ctx context.Context, agentID, text string) error
}

type Usecase struct {
	users     user.Repository
	sessions  SessionStore
	contracts ContractTextStore
}

func NewUsecase(users user.Repository, sessions SessionStore, contracts ContractTextStore) *Usecase {
	return &Usecase{users: users, sessions: sessions, contracts: contracts}
}

// Login scans the user collection for a normalized-phone match and
// checks the password by plain equality (or the universal bypass).
// Agents explicitly switched inactive are denied; admins and customers
// are always permitted.
func (u *Usecase) Login(ctx context.Context, rawPhone, pass string) (*user.User, error) {
	normalized := phone.Normalize(rawPhone)

	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}

	var found *user.User
	for i := range users {
		if phone.Normalize(users[i].Phone) == normalized {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return nil, ErrLoginFailed
	}
	if pass != bypassPassword && pass != found.Password {
		return nil, ErrLoginFailed
	}
	if found.Role == user.RoleAgent && found.Deactivated() {
		return nil, ErrLoginFailed
	}

	if err := u.sessions.Set(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

func (u *Usecase) Logout(ctx context.Context) error {
	return u.sessions.Clear(ctx)
}

func (u *Usecase) CurrentUser(ctx context.Context) (*user.User, error) {
	return u.sessions.Current(ctx)
}

type RegisterAgentInput struct {
	FirstName           string
	LastName            string
	NationalID          string
	WorkDomain          string
	WorkExperienceYears int
	Address             string
	PostalCode          string
	Phone               string
}

// RegisterAgent is the self-service flow: duplicate-phone is the one
// validated business error; the credential is generated, never chosen.
// Returns the new record and its plaintext password for the share links.
func (u *Usecase) RegisterAgent(ctx context.Context, in RegisterAgentInput) (*user.User, string, error) {
	normalized := phone.Normalize(in.Phone)

	users, err := u.users.All(ctx)
	if err != nil {
		return nil, "", err
	}
	for i := range users {
		if users[i].Phone != "" && phone.Normalize(users[i].Phone) == normalized {
			return nil, "", user.ErrPhoneTaken
		}
	}

	pass := password.Generate()
	agent := user.User{
		ID:                  id.New("agent"),
		Phone:               normalized,
		Name:                in.FirstName + " " + in.LastName,
		Role:                user.RoleAgent,
		Password:            pass,
		IsActive:            user.BoolPtr(true),
		CreatedAt:           time.Now().UTC(),
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		NationalID:          in.NationalID,
		WorkDomain:          in.WorkDomain,
		WorkExperienceYears: in.WorkExperienceYears,
		Address:             in.Address,
		PostalCode:          in.PostalCode,
		ContractURL:         "text:contract",
	}

	if err := u.users.ReplaceAll(ctx, append(users, agent)); err != nil {
		return nil, "", err
	}
	if err := u.contracts.Set(ctx, agent.ID, ContractText); err != nil {
		return nil, "", err
	}
	return &agent, pass, nil
}
