package kvstore

import (
	"context"

	"loanflow/internal/domain/loan"
)

// Defaults applied by the load-time shim to records written before the
// loan-type/credit-check fields existed.
const (
	shimLoanType       = "resalat"
	shimLoanTypeName   = "رسالت"
	shimCreditCheckFee = 250000
	shimCommissionRate = 0.02
)

type LoanRepository struct{ s *Store }

func NewLoanRepository(s *Store) *LoanRepository { return &LoanRepository{s: s} }

// All loads the collection and back-fills missing sub-records in place
// of surfacing them as errors. The migrated snapshot is written back so
// later readers see a consistent shape, exactly as the original did.
func (r *LoanRepository) All(ctx context.Context) ([]loan.Loan, error) {
	var loans []loan.Loan
	ok, err := r.s.get(ctx, KeyLoans, &loans)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	migrated := false
	for i := range loans {
		if migrateLoan(&loans[i]) {
			migrated = true
		}
	}
	if migrated {
		if err := r.s.put(ctx, KeyLoans, loans); err != nil {
			return nil, err
		}
	}
	return loans, nil
}

func (r *LoanRepository) ReplaceAll(ctx context.Context, loans []loan.Loan) error {
	return r.s.put(ctx, KeyLoans, loans)
}

func migrateLoan(l *loan.Loan) bool {
	changed := false
	if l.LoanType == "" {
		l.LoanType = shimLoanType
		l.LoanTypeName = shimLoanTypeName
		changed = true
	}
	if l.CreditCheckFee == 0 {
		l.CreditCheckFee = shimCreditCheckFee
		changed = true
	}
	if l.Commission == 0 && l.Amount != 0 {
		l.Commission = l.Amount * shimCommissionRate
		changed = true
	}
	if l.Guarantors == nil {
		l.Guarantors = []loan.Guarantor{}
		changed = true
	}
	if l.Documents == nil {
		l.Documents = []loan.Document{}
		changed = true
	}
	// A fully zero credit check means the sub-record never existed.
	cc := &l.CreditCheck
	if !cc.Paid && cc.Amount == 0 && cc.ReceiptURL == "" && cc.PaidAt == nil && cc.FormData == nil {
		cc.Amount = shimCreditCheckFee
		changed = true
	}
	return changed
}
