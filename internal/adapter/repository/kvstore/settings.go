package kvstore

import (
	"context"

	"loanflow/internal/domain/settings"
)

type SettingsRepository struct{ s *Store }

func NewSettingsRepository(s *Store) *SettingsRepository { return &SettingsRepository{s: s} }

// Get back-fills sub-records added after the first release (guarantor
// config on loan types, the two bank accounts) and persists the
// migrated shape. Returns nil when settings were never seeded.
func (r *SettingsRepository) Get(ctx context.Context) (*settings.SystemSettings, error) {
	var s settings.SystemSettings
	ok, err := r.s.get(ctx, KeySettings, &s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	migrated := false
	for i := range s.LoanTypes {
		lt := &s.LoanTypes[i]
		if lt.RequiredFields == nil {
			lt.RequiredFields = []string{}
			migrated = true
		}
		if lt.GuarantorFields == nil {
			lt.GuarantorFields = []string{}
			migrated = true
		}
	}
	if s.FeePaymentAccount == nil {
		s.FeePaymentAccount = &settings.BankAccount{}
		migrated = true
	}
	if s.WalletRechargeAccount == nil {
		s.WalletRechargeAccount = &settings.BankAccount{}
		migrated = true
	}
	if migrated {
		if err := r.s.put(ctx, KeySettings, &s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *SettingsRepository) Replace(ctx context.Context, s *settings.SystemSettings) error {
	return r.s.put(ctx, KeySettings, s)
}
