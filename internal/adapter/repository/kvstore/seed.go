package kvstore

import (
	"context"
	"time"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/message"
	"loanflow/internal/domain/settings"
	"loanflow/internal/domain/user"
)

// Demo credentials. Plaintext by contract; the admin record is
// refreshed in place on every seed so a stale collection cannot lock
// the operator out.
const (
	seedAdminID    = "admin-1"
	seedAdminPhone = "09127831399"
	seedAdminPass  = "refah1361"
	seedAdminName  = "مدیر سیستم"
)

// Seed initializes missing collections with demo data. Existing
// collections are left alone except for the admin refresh. Idempotent.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedSettings(ctx); err != nil {
		return err
	}
	if err := s.seedLoans(ctx); err != nil {
		return err
	}
	return s.seedMessages(ctx)
}

func (s *Store) seedUsers(ctx context.Context) error {
	now := time.Now().UTC()
	active := user.BoolPtr(true)

	var users []user.User
	ok, err := s.get(ctx, KeyUsers, &users)
	if err != nil {
		return err
	}

	if ok {
		refreshed := false
		for i := range users {
			if users[i].ID == seedAdminID {
				users[i].Phone = seedAdminPhone
				users[i].Password = seedAdminPass
				users[i].Name = seedAdminName
				refreshed = true
				break
			}
		}
		if !refreshed {
			admin := user.User{
				ID: seedAdminID, Phone: seedAdminPhone, Name: seedAdminName,
				Role: user.RoleAdmin, Password: seedAdminPass,
				IsActive: active, CreatedAt: now,
			}
			users = append([]user.User{admin}, users...)
		}
		return s.put(ctx, KeyUsers, users)
	}

	users = []user.User{
		{
			ID: seedAdminID, Phone: seedAdminPhone, Name: seedAdminName,
			Role: user.RoleAdmin, Password: seedAdminPass,
			IsActive: active, CreatedAt: now,
		},
		{
			ID: "agent-1", Phone: "0987654321", Name: "علی احمدی",
			Role: user.RoleAgent, Password: "agent123",
			IsActive: active, CreatedAt: now,
		},
		{
			ID: "customer-1", Phone: "5555555555", Name: "محمد رضایی",
			Role: user.RoleCustomer,
			IsActive: active, CreatedAt: now,
		},
	}
	return s.put(ctx, KeyUsers, users)
}

func (s *Store) seedSettings(ctx context.Context) error {
	var existing settings.SystemSettings
	ok, err := s.get(ctx, KeySettings, &existing)
	if err != nil || ok {
		return err
	}

	defaults := settings.SystemSettings{
		LoanTypes: []settings.LoanType{
			{
				ID: "resalat", Name: "رسالت",
				CreditCheckFee: 250000, CommissionRate: 2.5,
				RequiredFields:     []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "آدرس", "شغل", "درآمد ماهانه"},
				RequiresGuarantors: true, MinGuarantors: 1, MaxGuarantors: 2,
				GuarantorFields: []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "نسبت", "شغل"},
			},
			{
				ID: "gharzolhasaneh", Name: "قرض‌الحسنه",
				CreditCheckFee: 150000, CommissionRate: 1.5,
				RequiredFields:  []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "آدرس"},
				GuarantorFields: []string{},
			},
			{
				ID: "tejari", Name: "تجاری",
				CreditCheckFee: 500000, CommissionRate: 5,
				RequiredFields:     []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "آدرس", "شغل", "درآمد ماهانه", "نام شرکت", "شماره ثبت شرکت"},
				RequiresGuarantors: true, MinGuarantors: 2, MaxGuarantors: 3,
				GuarantorFields: []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "نسبت", "شغل", "درآمد ماهانه"},
			},
		},
		RequiredFields:       []string{"نام", "نام خانوادگی", "کد ملی", "شماره تماس", "آدرس", "شغل", "درآمد ماهانه"},
		BankCardNumber:       "6037-9971-1234-5678",
		AccountNumber:        "1234567890",
		ShebaNumber:          "IR123456789012345678901234",
		CheckOwnerNationalID: "0123456789",
		FeePaymentAccount: &settings.BankAccount{
			AccountNumber: "1234567890", ShebaNumber: "IR123456789012345678901234",
			BankName: "بانک ملی", AccountHolderName: "شرکت لون‌فلو",
		},
		WalletRechargeAccount: &settings.BankAccount{
			AccountNumber: "9876543210", ShebaNumber: "IR987654321098765432109876",
			BankName: "بانک سپه", AccountHolderName: "رفاهستون",
		},
	}
	return s.put(ctx, KeySettings, &defaults)
}

func (s *Store) seedLoans(ctx context.Context) error {
	var existing []loan.Loan
	ok, err := s.get(ctx, KeyLoans, &existing)
	if err != nil || ok {
		return err
	}

	now := time.Now().UTC()
	demo := []loan.Loan{{
		ID:             "loan-1",
		CustomerID:     "customer-1",
		CustomerName:   "محمد رضایی",
		CustomerPhone:  "5555555555",
		AgentID:        "agent-1",
		AgentName:      "علی احمدی",
		Amount:         50000000,
		Status:         loan.StatusUnderReview,
		LoanType:       "resalat",
		LoanTypeName:   "رسالت",
		Purpose:        loan.PurposeCash,
		CreditCheckFee: 250000,
		Commission:     1250000,
		Guarantors:     []loan.Guarantor{},
		Documents:      []loan.Document{},
		CreditCheck:    loan.CreditCheck{Paid: false, Amount: 250000},
		FormData:       map[string]string{},
		CreatedAt:      now.Add(-24 * time.Hour),
		UpdatedAt:      now,
	}}
	return s.put(ctx, KeyLoans, demo)
}

func (s *Store) seedMessages(ctx context.Context) error {
	var existing []message.DirectMessage
	ok, err := s.get(ctx, KeyDirectMessages, &existing)
	if err != nil || ok {
		return err
	}
	return s.put(ctx, KeyDirectMessages, []message.DirectMessage{})
}
