package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

// User covers all three roles; the agent-profile fields stay empty for
// admins and customers. Passwords are stored and compared as plaintext
// by explicit contract with the existing data; swapping in hashing
// would strand every stored credential.
type User struct {
	ID       string `json:"id"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Password string `json:"password,omitempty"`
	// Pointer: records written before the field existed carry no value
	// and must count as active. Only an explicit false blocks an agent.
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Agent profile
	FirstName           string `json:"firstName,omitempty"`
	LastName            string `json:"lastName,omitempty"`
	NationalID          string `json:"nationalId,omitempty"`
	WorkDomain          string `json:"workDomain,omitempty"`
	WorkExperienceYears int    `json:"workExperienceYears,omitempty"`
	Address             string `json:"address,omitempty"`
	PostalCode          string `json:"postalCode,omitempty"`

	// Contract files (data URLs)
	ContractURL       string `json:"contractUrl,omitempty"`
	SignedContractURL string `json:"signedContractUrl,omitempty"`
}

// Deactivated reports whether the record was explicitly switched off.
func (u *User) Deactivated() bool { return u.IsActive != nil && !*u.IsActive }

// BoolPtr is a convenience for building records with explicit flags.
func BoolPtr(v bool) *bool { return &v }
