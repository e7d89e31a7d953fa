package settings

// LoanType is the admin-configured template a loan is created from.
// Fee and commission rate are copied onto the loan at creation time;
// editing a LoanType never touches existing loans.
type LoanType struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	CreditCheckFee     float64  `json:"creditCheckFee"`
	CommissionRate     float64  `json:"commissionRate"`
	RequiredFields     []string `json:"requiredFields"`
	RequiresGuarantors bool     `json:"requiresGuarantors"`
	MinGuarantors      int      `json:"minGuarantors"`
	MaxGuarantors      int      `json:"maxGuarantors"`
	GuarantorFields    []string `json:"guarantorFields"`
}

type BankAccount struct {
	AccountNumber     string `json:"accountNumber"`
	ShebaNumber       string `json:"shebaNumber"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

// SystemSettings is a single object, not a collection.
type SystemSettings struct {
	LoanTypes             []LoanType   `json:"loanTypes"`
	RequiredFields        []string     `json:"requiredFields"`
	BankCardNumber        string       `json:"bankCardNumber"`
	AccountNumber         string       `json:"accountNumber,omitempty"`
	ShebaNumber           string       `json:"shebaNumber,omitempty"`
	CheckOwnerNationalID  string       `json:"checkOwnerNationalId,omitempty"`
	FeePaymentAccount     *BankAccount `json:"feePaymentAccount,omitempty"`
	WalletRechargeAccount *BankAccount `json:"walletRechargeAccount,omitempty"`
}

// LoanTypeByID scans the catalog; nil when absent.
func (s *SystemSettings) LoanTypeByID(id string) *LoanType {
	for i := range s.LoanTypes {
		if s.LoanTypes[i].ID == id {
			return &s.LoanTypes[i]
		}
	}
	return nil
}
