package user

import (
	"context"
	"time"

	"loanflow/internal/domain/user"
	"loanflow/pkg/id"
	"loanflow/pkg/password"
	"loanflow/pkg/phone"
	"loanflow/pkg/share"
)

// ContractTextStore mirrors the auth usecase's view of the per-agent
// contract text entries.
type ContractTextStore interface {
	Get(ctx context.Context, agentID string) (string, error)
	Delete(ctx context.Context, agentID string) error
}

type Usecase struct {
	users     user.Repository
	contracts ContractTextStore
}

func NewUsecase(users user.Repository, contracts ContractTextStore) *Usecase {
	return &Usecase{users: users, contracts: contracts}
}

func (u *Usecase) listByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]user.User, 0, len(users))
	for i := range users {
		if users[i].Role == role {
			out = append(out, users[i])
		}
	}
	return out, nil
}

func (u *Usecase) ListAgents(ctx context.Context) ([]user.User, error) {
	return u.listByRole(ctx, user.RoleAgent)
}

func (u *Usecase) ListCustomers(ctx context.Context) ([]user.User, error) {
	return u.listByRole(ctx, user.RoleCustomer)
}

func (u *Usecase) Get(ctx context.Context, userID string) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			out := users[i]
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

type AddAgentInput struct {
	Name  string
	Phone string
}

// AddAgent is the admin-side shortcut: name and phone only, generated
// password. Unlike self-registration it does not reject duplicate
// phones; the admin view is trusted to manage its own list.
func (u *Usecase) AddAgent(ctx context.Context, in AddAgentInput) (*user.User, string, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, "", err
	}

	pass := password.Generate()
	agent := user.User{
		ID:        id.New("agent"),
		Phone:     phone.Normalize(in.Phone),
		Name:      in.Name,
		Role:      user.RoleAgent,
		Password:  pass,
		IsActive:  user.BoolPtr(true),
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.ReplaceAll(ctx, append(users, agent)); err != nil {
		return nil, "", err
	}
	return &agent, pass, nil
}

type AddCustomerInput struct {
	Name  string
	Phone string
}

// AddCustomer creates a password-less customer record; customers log in
// with the universal demo credential until one is assigned.
func (u *Usecase) AddCustomer(ctx context.Context, in AddCustomerInput) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}

	customer := user.User{
		ID:        id.New("customer"),
		Phone:     phone.Normalize(in.Phone),
		Name:      in.Name,
		Role:      user.RoleCustomer,
		IsActive:  user.BoolPtr(true),
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.ReplaceAll(ctx, append(users, customer)); err != nil {
		return nil, err
	}
	return &customer, nil
}

// RemoveAgent hard-deletes the record and its stored contract text.
// Loans referencing the agent keep their denormalized agentName.
func (u *Usecase) RemoveAgent(ctx context.Context, agentID string) error {
	users, err := u.users.All(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	found := false
	for i := range users {
		if users[i].ID == agentID && users[i].Role == user.RoleAgent {
			found = true
			continue
		}
		kept = append(kept, users[i])
	}
	if !found {
		return user.ErrNotFound
	}
	if err := u.users.ReplaceAll(ctx, kept); err != nil {
		return err
	}
	return u.contracts.Delete(ctx, agentID)
}

// ToggleActive flips the explicit flag. Records with no flag at all
// count as active, so the first toggle always deactivates.
func (u *Usecase) ToggleActive(ctx context.Context, userID string) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		next := users[i].Deactivated()
		users[i].IsActive = user.BoolPtr(next)
		if err := u.users.ReplaceAll(ctx, users); err != nil {
			return nil, err
		}
		out := users[i]
		return &out, nil
	}
	return nil, user.ErrNotFound
}

// UploadSignedContract stores the agent's signed copy as a data URL on
// the record itself.
func (u *Usecase) UploadSignedContract(ctx context.Context, agentID, dataURL string) (*user.User, error) {
	users, err := u.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != agentID {
			continue
		}
		users[i].SignedContractURL = dataURL
		if err := u.users.ReplaceAll(ctx, users); err != nil {
			return nil, err
		}
		out := users[i]
		return &out, nil
	}
	return nil, user.ErrNotFound
}

// ContractText returns the agent's stored contract text; when none was
// stored (pre-registration records) the contractUrl field is returned
// as a fallback reference.
func (u *Usecase) ContractText(ctx context.Context, agentID string) (string, error) {
	text, err := u.contracts.Get(ctx, agentID)
	if err != nil {
		return "", err
	}
	if text != "" {
		return text, nil
	}
	agent, err := u.Get(ctx, agentID)
	if err != nil {
		return "", err
	}
	return agent.ContractURL, nil
}

// ShareCredentials builds the deep link for handing a user their login
// details over the chosen platform.
func (u *Usecase) ShareCredentials(ctx context.Context, userID string, platform share.Platform, loginURL string) (string, error) {
	rec, err := u.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	msg := share.CredentialsMessage(rec.Name, rec.Phone, rec.Password, loginURL)
	return share.Link(platform, rec.Phone, msg), nil
}
