package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loanflow/internal/domain/user"
	"loanflow/pkg/share"
)

type memUsers struct{ users []user.User }

func (m *memUsers) All(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memUsers) ReplaceAll(ctx context.Context, users []user.User) error {
	m.users = users
	return nil
}

type memContracts struct{ texts map[string]string }

func (m *memContracts) Get(ctx context.Context, agentID string) (string, error) {
	return m.texts[agentID], nil
}

func (m *memContracts) Delete(ctx context.Context, agentID string) error {
	delete(m.texts, agentID)
	return nil
}

func seeded() *memUsers {
	return &memUsers{users: []user.User{
		{ID: "admin-1", Phone: "09127831399", Role: user.RoleAdmin},
		{ID: "agent-1", Phone: "0987654321", Name: "علی احمدی", Role: user.RoleAgent, Password: "agent123"},
		{ID: "customer-1", Phone: "5555555555", Name: "محمد رضایی", Role: user.RoleCustomer},
	}}
}

func TestListByRole(t *testing.T) {
	uc := NewUsecase(seeded(), &memContracts{})
	ctx := context.Background()

	agents, err := uc.ListAgents(ctx)
	if err != nil || len(agents) != 1 || agents[0].ID != "agent-1" {
		t.Fatalf("agents=%+v err=%v", agents, err)
	}
	customers, err := uc.ListCustomers(ctx)
	if err != nil || len(customers) != 1 || customers[0].ID != "customer-1" {
		t.Fatalf("customers=%+v err=%v", customers, err)
	}
}

func TestAddAgent_GeneratedPasswordNormalizedPhone(t *testing.T) {
	store := seeded()
	uc := NewUsecase(store, &memContracts{})

	agent, pass, err := uc.AddAgent(context.Background(), AddAgentInput{
		Name: "سارا محمدی", Phone: "+98 912 000 1122",
	})
	if err != nil {
		t.Fatalf("AddAgent: %v", err)
	}
	if agent.Phone != "09120001122" {
		t.Errorf("phone = %q", agent.Phone)
	}
	if len(pass) != 8 || agent.Password != pass {
		t.Errorf("password = %q", pass)
	}
	if len(store.users) != 4 {
		t.Errorf("users = %d", len(store.users))
	}
}

func TestAddAgent_DuplicatePhoneAllowed(t *testing.T) {
	// Unlike self-registration, the admin shortcut performs no
	// duplicate check.
	uc := NewUsecase(seeded(), &memContracts{})
	if _, _, err := uc.AddAgent(context.Background(), AddAgentInput{Name: "x", Phone: "0987654321"}); err != nil {
		t.Fatalf("AddAgent dup: %v", err)
	}
}

func TestAddCustomer_NoPassword(t *testing.T) {
	uc := NewUsecase(seeded(), &memContracts{})

	c, err := uc.AddCustomer(context.Background(), AddCustomerInput{Name: "زهرا", Phone: "09120004455"})
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	if c.Password != "" || c.Role != user.RoleCustomer {
		t.Errorf("customer = %+v", c)
	}
}

func TestRemoveAgent(t *testing.T) {
	store := seeded()
	contracts := &memContracts{texts: map[string]string{"agent-1": "متن"}}
	uc := NewUsecase(store, contracts)
	ctx := context.Background()

	if err := uc.RemoveAgent(ctx, "agent-1"); err != nil {
		t.Fatalf("RemoveAgent: %v", err)
	}
	if len(store.users) != 2 {
		t.Errorf("users after remove = %d", len(store.users))
	}
	if _, ok := contracts.texts["agent-1"]; ok {
		t.Errorf("contract text not deleted")
	}

	if err := uc.RemoveAgent(ctx, "agent-1"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("second remove err = %v", err)
	}
	// Role-guarded: a customer ID is not removable through this path.
	if err := uc.RemoveAgent(ctx, "customer-1"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("remove customer err = %v", err)
	}
}

func TestToggleActive_AbsentFlagCountsAsActive(t *testing.T) {
	store := seeded()
	uc := NewUsecase(store, &memContracts{})
	ctx := context.Background()

	// Seeded agent has no explicit flag; first toggle deactivates.
	got, err := uc.ToggleActive(ctx, "agent-1")
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !got.Deactivated() {
		t.Fatalf("first toggle should deactivate: %+v", got.IsActive)
	}

	got, _ = uc.ToggleActive(ctx, "agent-1")
	if got.Deactivated() {
		t.Fatalf("second toggle should reactivate")
	}
}

func TestUploadSignedContract(t *testing.T) {
	store := seeded()
	uc := NewUsecase(store, &memContracts{})

	got, err := uc.UploadSignedContract(context.Background(), "agent-1", "data:application/pdf;base64,AAAA")
	if err != nil {
		t.Fatalf("UploadSignedContract: %v", err)
	}
	if got.SignedContractURL != "data:application/pdf;base64,AAAA" {
		t.Errorf("signedContractUrl = %q", got.SignedContractURL)
	}
	if store.users[1].SignedContractURL == "" {
		t.Errorf("not persisted")
	}
}

func TestContractText_FallsBackToContractURL(t *testing.T) {
	store := seeded()
	store.users[1].ContractURL = "text:contract"
	ctx := context.Background()

	uc := NewUsecase(store, &memContracts{texts: map[string]string{"agent-1": "متن قرارداد"}})
	text, err := uc.ContractText(ctx, "agent-1")
	if err != nil || text != "متن قرارداد" {
		t.Fatalf("text=%q err=%v", text, err)
	}

	uc = NewUsecase(store, &memContracts{})
	text, err = uc.ContractText(ctx, "agent-1")
	if err != nil || text != "text:contract" {
		t.Fatalf("fallback text=%q err=%v", text, err)
	}
}

func TestShareCredentials(t *testing.T) {
	uc := NewUsecase(seeded(), &memContracts{})

	link, err := uc.ShareCredentials(context.Background(), "agent-1", share.SMS, "")
	if err != nil {
		t.Fatalf("ShareCredentials: %v", err)
	}
	if !strings.HasPrefix(link, "sms:0987654321?body=") {
		t.Errorf("link = %q", link)
	}
}
