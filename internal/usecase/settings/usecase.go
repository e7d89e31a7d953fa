package settings

import (
	"context"
	"strconv"
	"strings"

	"loanflow/internal/domain/settings"
)

type Usecase struct {
	settings settings.Repository
}

func NewUsecase(st settings.Repository) *Usecase {
	return &Usecase{settings: st}
}

func (u *Usecase) Get(ctx context.Context) (*settings.SystemSettings, error) {
	return u.settings.Get(ctx)
}

type AddLoanTypeInput struct {
	ID                 string
	Name               string
	CreditCheckFee     string // free-text, parse-or-zero
	CommissionRate     string
	RequiredFields     string // "،"-separated
	RequiresGuarantors bool
	MinGuarantors      int
	MaxGuarantors      int
	GuarantorFields    string
}

// parseAmount tolerates blank and malformed numeric input the way the
// admin form always has: anything unparsable becomes zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// splitFields splits the Persian-comma separated field list, dropping
// blanks.
func splitFields(s string) []string {
	parts := strings.Split(s, "،")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// AddLoanType appends to the catalog. Existing loans created from an
// earlier version of a type are unaffected; they carry their own fee
// and commission snapshot.
func (u *Usecase) AddLoanType(ctx context.Context, in AddLoanTypeInput) (*settings.SystemSettings, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	st.LoanTypes = append(st.LoanTypes, settings.LoanType{
		ID:                 in.ID,
		Name:               in.Name,
		CreditCheckFee:     parseAmount(in.CreditCheckFee),
		CommissionRate:     parseAmount(in.CommissionRate),
		RequiredFields:     splitFields(in.RequiredFields),
		RequiresGuarantors: in.RequiresGuarantors,
		MinGuarantors:      in.MinGuarantors,
		MaxGuarantors:      in.MaxGuarantors,
		GuarantorFields:    splitFields(in.GuarantorFields),
	})
	if err := u.settings.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (u *Usecase) DeleteLoanType(ctx context.Context, loanTypeID string) (*settings.SystemSettings, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	kept := st.LoanTypes[:0]
	found := false
	for _, lt := range st.LoanTypes {
		if lt.ID == loanTypeID {
			found = true
			continue
		}
		kept = append(kept, lt)
	}
	if !found {
		return nil, settings.ErrLoanTypeNotFound
	}
	st.LoanTypes = kept
	if err := u.settings.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

type BankDetailsInput struct {
	BankCardNumber       string
	AccountNumber        string
	ShebaNumber          string
	CheckOwnerNationalID string
}

func (u *Usecase) UpdateBankDetails(ctx context.Context, in BankDetailsInput) (*settings.SystemSettings, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	st.BankCardNumber = in.BankCardNumber
	st.AccountNumber = in.AccountNumber
	st.ShebaNumber = in.ShebaNumber
	st.CheckOwnerNationalID = in.CheckOwnerNationalID
	if err := u.settings.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// UpdateFeePaymentAccount and UpdateWalletRechargeAccount replace the
// two payment-target accounts shown on the upload screens.
func (u *Usecase) UpdateFeePaymentAccount(ctx context.Context, acc settings.BankAccount) (*settings.SystemSettings, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	st.FeePaymentAccount = &acc
	if err := u.settings.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (u *Usecase) UpdateWalletRechargeAccount(ctx context.Context, acc settings.BankAccount) (*settings.SystemSettings, error) {
	st, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	st.WalletRechargeAccount = &acc
	if err := u.settings.Replace(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
