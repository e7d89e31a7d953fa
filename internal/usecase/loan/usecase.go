package loan

import (
	"context"
	"time"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/settings"
	"loanflow/pkg/id"
)

type Usecase struct {
	loans    loan.Repository
	settings settings.Repository
}

func NewUsecase(loans loan.Repository, st settings.Repository) *Usecase {
	return &Usecase{loans: loans, settings: st}
}

// mutate is the shared read-modify-write over the whole collection.
// It loads the snapshot, applies fn to the matching record, stamps
// updatedAt and writes everything back.
func (u *Usecase) mutate(ctx context.Context, loanID string, fn func(l *loan.Loan) error) (*loan.Loan, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID != loanID {
			continue
		}
		if err := fn(&loans[i]); err != nil {
			return nil, err
		}
		loans[i].UpdatedAt = time.Now().UTC()
		if err := u.loans.ReplaceAll(ctx, loans); err != nil {
			return nil, err
		}
		out := loans[i]
		return &out, nil
	}
	return nil, loan.ErrNotFound
}

type CreateInput struct {
	CustomerID             string
	CustomerName           string
	CustomerPhone          string
	AgentID                string
	AgentName              string
	Amount                 float64
	LoanTypeID             string
	Purpose                loan.Purpose
	PurchaseFromRefaheston bool
	FormData               map[string]string
}

// Create snapshots creditCheckFee and commission from the chosen loan
// type; the record keeps those values even if the type is later edited
// or deleted.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*loan.Loan, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	lt := st.LoanTypeByID(in.LoanTypeID)
	if lt == nil {
		return nil, settings.ErrLoanTypeNotFound
	}

	now := time.Now().UTC()
	l := loan.Loan{
		ID:                     id.New("loan"),
		CustomerID:             in.CustomerID,
		CustomerName:           in.CustomerName,
		CustomerPhone:          in.CustomerPhone,
		AgentID:                in.AgentID,
		AgentName:              in.AgentName,
		Amount:                 in.Amount,
		Status:                 loan.StatusPending,
		LoanType:               lt.ID,
		LoanTypeName:           lt.Name,
		Purpose:                in.Purpose,
		CreditCheckFee:         lt.CreditCheckFee,
		Commission:             in.Amount * lt.CommissionRate / 100,
		Guarantors:             []loan.Guarantor{},
		Documents:              []loan.Document{},
		CreditCheck:            loan.CreditCheck{Paid: false, Amount: lt.CreditCheckFee},
		FormData:               in.FormData,
		PurchaseFromRefaheston: in.PurchaseFromRefaheston,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if l.FormData == nil {
		l.FormData = map[string]string{}
	}

	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.loans.ReplaceAll(ctx, append(loans, l)); err != nil {
		return nil, err
	}
	return &l, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*loan.Loan, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID == loanID {
			out := loans[i]
			return &out, nil
		}
	}
	return nil, loan.ErrNotFound
}

func (u *Usecase) List(ctx context.Context) ([]loan.Loan, error) {
	return u.loans.All(ctx)
}

// ListByAgent and ListByCustomer back the role-scoped list views.
func (u *Usecase) ListByAgent(ctx context.Context, agentID string) ([]loan.Loan, error) {
	return u.filter(ctx, func(l *loan.Loan) bool { return l.AgentID == agentID })
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]loan.Loan, error) {
	return u.filter(ctx, func(l *loan.Loan) bool { return l.CustomerID == customerID })
}

func (u *Usecase) filter(ctx context.Context, keep func(*loan.Loan) bool) ([]loan.Loan, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]loan.Loan, 0, len(loans))
	for i := range loans {
		if keep(&loans[i]) {
			out = append(out, loans[i])
		}
	}
	return out, nil
}

// UpdateStatus is the admin override. Only the six base statuses may be
// set this way; the extended check-workflow states are reached solely
// through their named transitions.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, status loan.Status) (*loan.Loan, error) {
	if !status.Overridable() {
		return nil, loan.ErrStatusNotAllowed
	}
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		l.Status = status
		return nil
	})
}

type GuarantorInput struct {
	Name         string
	Phone        string
	NationalID   string
	Relationship string
	FormData     map[string]string
}

// AddGuarantor appends a pending guarantor. The loan type's
// minGuarantors is informational only and is not checked here.
func (u *Usecase) AddGuarantor(ctx context.Context, loanID string, in GuarantorInput) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		l.Guarantors = append(l.Guarantors, loan.Guarantor{
			ID:           id.New("guarantor"),
			Name:         in.Name,
			Phone:        in.Phone,
			NationalID:   in.NationalID,
			Relationship: in.Relationship,
			Documents:    []loan.Document{},
			FormData:     in.FormData,
			Status:       loan.GuarantorPending,
		})
		return nil
	})
}

// SetGuarantorStatus is independent of the parent loan's status.
func (u *Usecase) SetGuarantorStatus(ctx context.Context, loanID, guarantorID string, status loan.GuarantorStatus) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		for i := range l.Guarantors {
			if l.Guarantors[i].ID == guarantorID {
				l.Guarantors[i].Status = status
				return nil
			}
		}
		return loan.ErrGuarantorNotFound
	})
}

type DocumentInput struct {
	Name        string
	Type        string
	Category    loan.DocumentCategory
	URL         string
	GuarantorID string
}

func newDocument(in DocumentInput) loan.Document {
	return loan.Document{
		ID:          id.New("doc"),
		Name:        in.Name,
		Type:        in.Type,
		Category:    in.Category,
		URL:         in.URL,
		UploadedAt:  time.Now().UTC(),
		GuarantorID: in.GuarantorID,
	}
}

// AttachDocument appends a document to the loan. The URL is expected to
// be a data URL produced by pkg/dataurl; no size or type validation
// happens here.
func (u *Usecase) AttachDocument(ctx context.Context, loanID string, in DocumentInput) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		l.Documents = append(l.Documents, newDocument(in))
		return nil
	})
}

// AttachFeeReceipt and AttachWalletRechargeReceipt fix the category so
// handlers can't mislabel the two payment receipts the stage deriver
// looks for.
func (u *Usecase) AttachFeeReceipt(ctx context.Context, loanID string, in DocumentInput) (*loan.Loan, error) {
	in.Category = loan.CategoryFeeReceipt
	return u.AttachDocument(ctx, loanID, in)
}

func (u *Usecase) AttachWalletRechargeReceipt(ctx context.Context, loanID string, in DocumentInput) (*loan.Loan, error) {
	in.Category = loan.CategoryWalletRecharge
	return u.AttachDocument(ctx, loanID, in)
}

// AddGuarantorDocument stores the upload on the guarantor's own list,
// not the loan-level one.
func (u *Usecase) AddGuarantorDocument(ctx context.Context, loanID, guarantorID string, in DocumentInput) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		for i := range l.Guarantors {
			if l.Guarantors[i].ID == guarantorID {
				in.Category = loan.CategoryGuarantor
				in.GuarantorID = guarantorID
				l.Guarantors[i].Documents = append(l.Guarantors[i].Documents, newDocument(in))
				return nil
			}
		}
		return loan.ErrGuarantorNotFound
	})
}

// PayCreditCheck records the fee receipt and marks the credit check
// paid. The receipt also lands in the document list under the
// credit_check category so the stage deriver sees it.
func (u *Usecase) PayCreditCheck(ctx context.Context, loanID, receiptName, receiptURL string) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		now := time.Now().UTC()
		l.CreditCheck.Paid = true
		l.CreditCheck.ReceiptURL = receiptURL
		l.CreditCheck.PaidAt = &now
		l.Documents = append(l.Documents, newDocument(DocumentInput{
			Name:     receiptName,
			Type:     "image",
			Category: loan.CategoryCreditCheck,
			URL:      receiptURL,
		}))
		return nil
	})
}

type CheckUploadInput struct {
	ImageURL    string
	SayadNumber string
	BankName    string
	OwnerName   string
	UploadedBy  string
}

// ReceiveCheck records the physical guarantee check and force-sets the
// check_received state. The check amount always mirrors the loan
// amount.
func (u *Usecase) ReceiveCheck(ctx context.Context, loanID string, in CheckUploadInput) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		now := time.Now().UTC()
		l.CheckInfo = &loan.CheckInfo{
			Amount:       l.Amount,
			ImageURL:     in.ImageURL,
			Title:        "خرید کالا",
			CustomerName: l.CustomerName,
			SayadNumber:  in.SayadNumber,
			BankName:     in.BankName,
			OwnerName:    in.OwnerName,
			UploadedAt:   &now,
			UploadedBy:   in.UploadedBy,
		}
		l.Documents = append(l.Documents, newDocument(DocumentInput{
			Name:     "چک ضمانت",
			Type:     "image",
			Category: loan.CategoryCheck,
			URL:      in.ImageURL,
		}))
		l.Status = loan.StatusCheckReceived
		return nil
	})
}

// IssueReturnReceipt stamps the return-receipt record; its presence is
// the precondition for the delivery upload below.
func (u *Usecase) IssueReturnReceipt(ctx context.Context, loanID, issuedBy string) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		now := time.Now().UTC()
		if l.ReturnReceipt == nil {
			l.ReturnReceipt = &loan.ReturnReceipt{}
		}
		l.ReturnReceipt.GeneratedAt = &now
		l.ReturnReceipt.GeneratedBy = issuedBy
		l.Status = loan.StatusReturnReceiptIssued
		return nil
	})
}

// UploadCheckDeliveryReceipt requires an issued return receipt, stores
// the delivery proof and force-sets check_delivered.
func (u *Usecase) UploadCheckDeliveryReceipt(ctx context.Context, loanID, receiptURL string) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		if l.ReturnReceipt == nil {
			return loan.ErrInvalidTransition
		}
		now := time.Now().UTC()
		l.ReturnReceipt.DeliveryReceiptURL = receiptURL
		l.ReturnReceipt.DeliveredAt = &now
		l.Documents = append(l.Documents, newDocument(DocumentInput{
			Name:     "رسید تحویل چک",
			Type:     "image",
			Category: loan.CategoryCheckDelivery,
			URL:      receiptURL,
		}))
		l.Status = loan.StatusCheckDelivered
		return nil
	})
}

// SignContract is the customer-side acceptance: only an approved loan
// can be signed, and signing disburses it.
func (u *Usecase) SignContract(ctx context.Context, loanID, signedBy string) (*loan.Loan, error) {
	return u.mutate(ctx, loanID, func(l *loan.Loan) error {
		if l.Status != loan.StatusApproved {
			return loan.ErrInvalidTransition
		}
		now := time.Now().UTC()
		l.Contract.SignedAt = &now
		l.Contract.SignedBy = signedBy
		l.Status = loan.StatusDisbursed
		return nil
	})
}
