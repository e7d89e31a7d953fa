package settings

import (
	"context"
	"errors"
	"testing"

	"loanflow/internal/domain/settings"
)

type memSettings struct{ s *settings.SystemSettings }

func (m *memSettings) Get(ctx context.Context) (*settings.SystemSettings, error) {
	cp := *m.s
	return &cp, nil
}

func (m *memSettings) Replace(ctx context.Context, s *settings.SystemSettings) error {
	m.s = s
	return nil
}

func newStore() *memSettings {
	return &memSettings{s: &settings.SystemSettings{
		LoanTypes: []settings.LoanType{{ID: "resalat", Name: "رسالت", CreditCheckFee: 250000, CommissionRate: 2.5}},
	}}
}

func TestAddLoanType_ParsesNumbersAndFieldLists(t *testing.T) {
	uc := NewUsecase(newStore())

	st, err := uc.AddLoanType(context.Background(), AddLoanTypeInput{
		ID: "tejari", Name: "تجاری",
		CreditCheckFee: "500000", CommissionRate: "5",
		RequiredFields:     "نام، نام خانوادگی، کد ملی",
		RequiresGuarantors: true, MinGuarantors: 2, MaxGuarantors: 3,
		GuarantorFields: "نام، شغل",
	})
	if err != nil {
		t.Fatalf("AddLoanType: %v", err)
	}
	if len(st.LoanTypes) != 2 {
		t.Fatalf("loan types = %d", len(st.LoanTypes))
	}
	lt := st.LoanTypes[1]
	if lt.CreditCheckFee != 500000 || lt.CommissionRate != 5 {
		t.Errorf("parsed numbers = %v / %v", lt.CreditCheckFee, lt.CommissionRate)
	}
	if len(lt.RequiredFields) != 3 || lt.RequiredFields[2] != "کد ملی" {
		t.Errorf("required fields = %v", lt.RequiredFields)
	}
	if len(lt.GuarantorFields) != 2 {
		t.Errorf("guarantor fields = %v", lt.GuarantorFields)
	}
}

func TestAddLoanType_MalformedNumbersBecomeZero(t *testing.T) {
	uc := NewUsecase(newStore())

	st, err := uc.AddLoanType(context.Background(), AddLoanTypeInput{
		ID: "x", Name: "x", CreditCheckFee: "abc", CommissionRate: "",
	})
	if err != nil {
		t.Fatalf("AddLoanType: %v", err)
	}
	lt := st.LoanTypes[1]
	if lt.CreditCheckFee != 0 || lt.CommissionRate != 0 {
		t.Errorf("want zeroes, got %v / %v", lt.CreditCheckFee, lt.CommissionRate)
	}
}

func TestDeleteLoanType(t *testing.T) {
	store := newStore()
	uc := NewUsecase(store)
	ctx := context.Background()

	st, err := uc.DeleteLoanType(ctx, "resalat")
	if err != nil {
		t.Fatalf("DeleteLoanType: %v", err)
	}
	if len(st.LoanTypes) != 0 {
		t.Errorf("loan types = %+v", st.LoanTypes)
	}

	if _, err := uc.DeleteLoanType(ctx, "resalat"); !errors.Is(err, settings.ErrLoanTypeNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestUpdateBankDetails(t *testing.T) {
	store := newStore()
	uc := NewUsecase(store)

	st, err := uc.UpdateBankDetails(context.Background(), BankDetailsInput{
		BankCardNumber: "6037-0000-0000-0000", AccountNumber: "42",
		ShebaNumber: "IR000000000000000000000042", CheckOwnerNationalID: "0012345678",
	})
	if err != nil {
		t.Fatalf("UpdateBankDetails: %v", err)
	}
	if st.BankCardNumber != "6037-0000-0000-0000" || st.CheckOwnerNationalID != "0012345678" {
		t.Errorf("settings = %+v", st)
	}
	// Loan types are untouched by a bank-details update.
	if len(st.LoanTypes) != 1 {
		t.Errorf("loan types = %d", len(st.LoanTypes))
	}
}

func TestUpdatePaymentAccounts(t *testing.T) {
	uc := NewUsecase(newStore())
	ctx := context.Background()

	st, err := uc.UpdateFeePaymentAccount(ctx, settings.BankAccount{AccountNumber: "1", BankName: "بانک ملی"})
	if err != nil || st.FeePaymentAccount == nil || st.FeePaymentAccount.AccountNumber != "1" {
		t.Fatalf("fee account: %+v err=%v", st.FeePaymentAccount, err)
	}
	st, err = uc.UpdateWalletRechargeAccount(ctx, settings.BankAccount{AccountNumber: "2", BankName: "بانک سپه"})
	if err != nil || st.WalletRechargeAccount == nil || st.WalletRechargeAccount.AccountNumber != "2" {
		t.Fatalf("wallet account: %+v err=%v", st.WalletRechargeAccount, err)
	}
}
