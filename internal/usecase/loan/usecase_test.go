package loan

import (
	"context"
	"errors"
	"testing"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/settings"
)

// ----- test doubles -----

type mockLoans struct {
	AllFn        func(ctx context.Context) ([]loan.Loan, error)
	ReplaceAllFn func(ctx context.Context, loans []loan.Loan) error
}

func (m *mockLoans) All(ctx context.Context) ([]loan.Loan, error) {
	if m.AllFn != nil {
		return m.AllFn(ctx)
	}
	return nil, nil
}

func (m *mockLoans) ReplaceAll(ctx context.Context, loans []loan.Loan) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, loans)
	}
	return nil
}

type mockSettings struct {
	GetFn func(ctx context.Context) (*settings.SystemSettings, error)
}

func (m *mockSettings) Get(ctx context.Context) (*settings.SystemSettings, error) {
	return m.GetFn(ctx)
}

func (m *mockSettings) Replace(ctx context.Context, s *settings.SystemSettings) error { return nil }

// memLoans keeps the collection in memory so read-modify-write cycles
// behave like the real store.
type memLoans struct{ loans []loan.Loan }

func (m *memLoans) All(ctx context.Context) ([]loan.Loan, error) {
	out := make([]loan.Loan, len(m.loans))
	copy(out, m.loans)
	return out, nil
}

func (m *memLoans) ReplaceAll(ctx context.Context, loans []loan.Loan) error {
	m.loans = loans
	return nil
}

func settingsWithResalat() *settings.SystemSettings {
	return &settings.SystemSettings{
		LoanTypes: []settings.LoanType{{
			ID: "resalat", Name: "رسالت",
			CreditCheckFee: 250000, CommissionRate: 2.5,
			RequiresGuarantors: true, MinGuarantors: 1, MaxGuarantors: 2,
		}},
	}
}

func newUC(store *memLoans) *Usecase {
	return NewUsecase(store, &mockSettings{
		GetFn: func(ctx context.Context) (*settings.SystemSettings, error) {
			return settingsWithResalat(), nil
		},
	})
}

func seedLoan(store *memLoans, l loan.Loan) {
	if l.Guarantors == nil {
		l.Guarantors = []loan.Guarantor{}
	}
	if l.Documents == nil {
		l.Documents = []loan.Document{}
	}
	store.loans = append(store.loans, l)
}

// ----- tests -----

func TestCreate_SnapshotsFeeAndCommission(t *testing.T) {
	store := &memLoans{}
	uc := newUC(store)

	l, err := uc.Create(context.Background(), CreateInput{
		CustomerID: "customer-1", CustomerName: "محمد رضایی",
		AgentID: "agent-1", Amount: 50_000_000,
		LoanTypeID: "resalat", Purpose: loan.PurposeCash,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Status != loan.StatusPending {
		t.Errorf("status = %s", l.Status)
	}
	if l.CreditCheckFee != 250000 {
		t.Errorf("creditCheckFee = %v", l.CreditCheckFee)
	}
	if l.Commission != 50_000_000*2.5/100 {
		t.Errorf("commission = %v", l.Commission)
	}
	if l.CreditCheck.Amount != 250000 || l.CreditCheck.Paid {
		t.Errorf("credit check = %+v", l.CreditCheck)
	}
	if l.LoanTypeName != "رسالت" {
		t.Errorf("loanTypeName = %q", l.LoanTypeName)
	}
	if len(store.loans) != 1 {
		t.Fatalf("collection size = %d", len(store.loans))
	}
}

func TestCreate_SnapshotSurvivesLoanTypeEdit(t *testing.T) {
	store := &memLoans{}
	current := settingsWithResalat()
	uc := NewUsecase(store, &mockSettings{
		GetFn: func(ctx context.Context) (*settings.SystemSettings, error) { return current, nil },
	})

	l, err := uc.Create(context.Background(), CreateInput{Amount: 1_000_000, LoanTypeID: "resalat"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Edit the type after creation; the existing record must not move.
	current.LoanTypes[0].CreditCheckFee = 999999
	current.LoanTypes[0].CommissionRate = 10

	got, err := uc.Get(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CreditCheckFee != 250000 || got.Commission != 1_000_000*2.5/100 {
		t.Errorf("snapshot recomputed: fee=%v commission=%v", got.CreditCheckFee, got.Commission)
	}
}

func TestCreate_UnknownLoanType(t *testing.T) {
	uc := newUC(&memLoans{})
	_, err := uc.Create(context.Background(), CreateInput{LoanTypeID: "nope"})
	if !errors.Is(err, settings.ErrLoanTypeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateStatus_BaseStatusesOnly(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", Status: loan.StatusPending})
	uc := newUC(store)
	ctx := context.Background()

	for _, s := range loan.OverrideStatuses {
		if _, err := uc.UpdateStatus(ctx, "loan-1", s); err != nil {
			t.Errorf("override to %s: %v", s, err)
		}
	}

	// Extended states must go through their named transitions.
	for _, s := range []loan.Status{loan.StatusCheckReceived, loan.StatusCheckDelivered, loan.StatusFeePaid} {
		if _, err := uc.UpdateStatus(ctx, "loan-1", s); !errors.Is(err, loan.ErrStatusNotAllowed) {
			t.Errorf("override to %s err = %v, want ErrStatusNotAllowed", s, err)
		}
	}
}

func TestUpdateStatus_UnknownLoan(t *testing.T) {
	uc := newUC(&memLoans{})
	_, err := uc.UpdateStatus(context.Background(), "missing", loan.StatusApproved)
	if !errors.Is(err, loan.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestGuarantorLifecycle(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", Status: loan.StatusPending})
	uc := newUC(store)
	ctx := context.Background()

	l, err := uc.AddGuarantor(ctx, "loan-1", GuarantorInput{
		Name: "رضا کریمی", Phone: "09121112233", NationalID: "0011223344", Relationship: "برادر",
	})
	if err != nil {
		t.Fatalf("AddGuarantor: %v", err)
	}
	if len(l.Guarantors) != 1 {
		t.Fatalf("guarantors = %d", len(l.Guarantors))
	}
	g := l.Guarantors[0]
	if g.EffectiveStatus() != loan.GuarantorPending {
		t.Errorf("new guarantor status = %s", g.Status)
	}

	l, err = uc.SetGuarantorStatus(ctx, "loan-1", g.ID, loan.GuarantorApproved)
	if err != nil {
		t.Fatalf("SetGuarantorStatus: %v", err)
	}
	if l.Guarantors[0].Status != loan.GuarantorApproved {
		t.Errorf("status = %s", l.Guarantors[0].Status)
	}
	// Approval never touches the parent loan status.
	if l.Status != loan.StatusPending {
		t.Errorf("loan status changed to %s", l.Status)
	}

	if _, err := uc.SetGuarantorStatus(ctx, "loan-1", "missing", loan.GuarantorApproved); !errors.Is(err, loan.ErrGuarantorNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestAttachDocument_Categories(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1"})
	uc := newUC(store)
	ctx := context.Background()

	l, err := uc.AttachDocument(ctx, "loan-1", DocumentInput{
		Name: "کارت ملی", Type: "image", Category: loan.CategoryCustomer, URL: "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("AttachDocument: %v", err)
	}
	if len(l.Documents) != 1 || l.Documents[0].Category != loan.CategoryCustomer {
		t.Fatalf("documents = %+v", l.Documents)
	}

	// Fee and wallet wrappers pin their category regardless of input.
	l, _ = uc.AttachFeeReceipt(ctx, "loan-1", DocumentInput{Name: "رسید", Category: loan.CategoryCustomer, URL: "u"})
	if l.Documents[1].Category != loan.CategoryFeeReceipt {
		t.Errorf("fee receipt category = %s", l.Documents[1].Category)
	}
	l, _ = uc.AttachWalletRechargeReceipt(ctx, "loan-1", DocumentInput{Name: "رسید", URL: "u"})
	if l.Documents[2].Category != loan.CategoryWalletRecharge {
		t.Errorf("wallet category = %s", l.Documents[2].Category)
	}
}

func TestAddGuarantorDocument(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", Guarantors: []loan.Guarantor{{ID: "g-1", Documents: []loan.Document{}}}})
	uc := newUC(store)

	l, err := uc.AddGuarantorDocument(context.Background(), "loan-1", "g-1", DocumentInput{
		Name: "شناسنامه", Type: "image", URL: "data:image/png;base64,BBBB",
	})
	if err != nil {
		t.Fatalf("AddGuarantorDocument: %v", err)
	}
	doc := l.Guarantors[0].Documents[0]
	if doc.Category != loan.CategoryGuarantor || doc.GuarantorID != "g-1" {
		t.Errorf("doc = %+v", doc)
	}
	// Guarantor documents live on the guarantor, not the loan list.
	if len(l.Documents) != 0 {
		t.Errorf("loan-level documents = %d", len(l.Documents))
	}
}

func TestPayCreditCheck(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", CreditCheck: loan.CreditCheck{Amount: 250000}})
	uc := newUC(store)

	l, err := uc.PayCreditCheck(context.Background(), "loan-1", "رسید پرداخت", "data:image/png;base64,CCCC")
	if err != nil {
		t.Fatalf("PayCreditCheck: %v", err)
	}
	if !l.CreditCheck.Paid || l.CreditCheck.ReceiptURL == "" || l.CreditCheck.PaidAt == nil {
		t.Errorf("credit check = %+v", l.CreditCheck)
	}
	if len(l.Documents) != 1 || l.Documents[0].Category != loan.CategoryCreditCheck {
		t.Errorf("receipt document = %+v", l.Documents)
	}
}

func TestReceiveCheck_ForcesCheckReceived(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{
		ID: "loan-1", Amount: 50_000_000, CustomerName: "محمد رضایی",
		Status: loan.StatusDisbursed,
	})
	uc := newUC(store)

	l, err := uc.ReceiveCheck(context.Background(), "loan-1", CheckUploadInput{
		ImageURL: "data:image/png;base64,DDDD", SayadNumber: "1234567890123456",
		BankName: "بانک رسالت", OwnerName: "محمد رضایی", UploadedBy: "agent-1",
	})
	if err != nil {
		t.Fatalf("ReceiveCheck: %v", err)
	}
	if l.Status != loan.StatusCheckReceived {
		t.Errorf("status = %s", l.Status)
	}
	ci := l.CheckInfo
	if ci == nil {
		t.Fatal("checkInfo not set")
	}
	if ci.Amount != 50_000_000 || ci.Title != "خرید کالا" || ci.CustomerName != "محمد رضایی" {
		t.Errorf("checkInfo = %+v", ci)
	}
	if ci.UploadedAt == nil || ci.UploadedBy != "agent-1" {
		t.Errorf("upload stamp = %+v", ci)
	}
}

func TestCheckDeliveryReceipt_RequiresReturnReceipt(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", Status: loan.StatusCheckReceived})
	uc := newUC(store)
	ctx := context.Background()

	// No return receipt issued yet.
	if _, err := uc.UploadCheckDeliveryReceipt(ctx, "loan-1", "u"); !errors.Is(err, loan.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	l, err := uc.IssueReturnReceipt(ctx, "loan-1", "admin-1")
	if err != nil {
		t.Fatalf("IssueReturnReceipt: %v", err)
	}
	if l.Status != loan.StatusReturnReceiptIssued || l.ReturnReceipt.GeneratedAt == nil {
		t.Fatalf("after issue: %+v", l)
	}

	l, err = uc.UploadCheckDeliveryReceipt(ctx, "loan-1", "data:image/png;base64,EEEE")
	if err != nil {
		t.Fatalf("UploadCheckDeliveryReceipt: %v", err)
	}
	if l.Status != loan.StatusCheckDelivered {
		t.Errorf("status = %s", l.Status)
	}
	if l.ReturnReceipt.DeliveryReceiptURL == "" || l.ReturnReceipt.DeliveredAt == nil {
		t.Errorf("returnReceipt = %+v", l.ReturnReceipt)
	}
}

func TestSignContract_OnlyFromApproved(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1", Status: loan.StatusUnderReview})
	uc := newUC(store)
	ctx := context.Background()

	if _, err := uc.SignContract(ctx, "loan-1", "customer-1"); !errors.Is(err, loan.ErrInvalidTransition) {
		t.Fatalf("sign from under_review err = %v", err)
	}

	_, _ = uc.UpdateStatus(ctx, "loan-1", loan.StatusApproved)
	l, err := uc.SignContract(ctx, "loan-1", "customer-1")
	if err != nil {
		t.Fatalf("SignContract: %v", err)
	}
	if l.Status != loan.StatusDisbursed {
		t.Errorf("status = %s", l.Status)
	}
	if l.Contract.SignedAt == nil || l.Contract.SignedBy != "customer-1" {
		t.Errorf("contract = %+v", l.Contract)
	}
}

func TestListScopes(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "l1", AgentID: "agent-1", CustomerID: "customer-1"})
	seedLoan(store, loan.Loan{ID: "l2", AgentID: "agent-2", CustomerID: "customer-1"})
	seedLoan(store, loan.Loan{ID: "l3", AgentID: "agent-1", CustomerID: "customer-2"})
	uc := newUC(store)
	ctx := context.Background()

	all, _ := uc.List(ctx)
	if len(all) != 3 {
		t.Errorf("List = %d", len(all))
	}
	byAgent, _ := uc.ListByAgent(ctx, "agent-1")
	if len(byAgent) != 2 {
		t.Errorf("ListByAgent = %d", len(byAgent))
	}
	byCustomer, _ := uc.ListByCustomer(ctx, "customer-1")
	if len(byCustomer) != 2 {
		t.Errorf("ListByCustomer = %d", len(byCustomer))
	}
}

func TestCreate_RepositoryErrorPropagates(t *testing.T) {
	wantErr := errors.New("store down")
	uc := NewUsecase(&mockLoans{
		AllFn: func(ctx context.Context) ([]loan.Loan, error) { return nil, wantErr },
	}, &mockSettings{
		GetFn: func(ctx context.Context) (*settings.SystemSettings, error) {
			return settingsWithResalat(), nil
		},
	})

	if _, err := uc.Create(context.Background(), CreateInput{LoanTypeID: "resalat"}); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestMutate_StampsUpdatedAt(t *testing.T) {
	store := &memLoans{}
	seedLoan(store, loan.Loan{ID: "loan-1"})
	uc := newUC(store)

	l, err := uc.UpdateStatus(context.Background(), "loan-1", loan.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if l.UpdatedAt.IsZero() {
		t.Error("updatedAt not stamped")
	}
}
