package loan

import "time"

type Status string

// Customer/agent-facing states plus the extended states of the admin
// physical-check workflow. The extended states are only ever reached
// through the named transition functions in usecase/loan; the base six
// are additionally settable through the admin override.
const (
	StatusPending             Status = "pending"
	StatusUnderReview         Status = "under_review"
	StatusApproved            Status = "approved"
	StatusCheckReceived       Status = "check_received"
	StatusContractSent        Status = "contract_sent"
	StatusContractApproved    Status = "contract_approved"
	StatusCreditTransferred   Status = "credit_transferred"
	StatusFeePaid             Status = "fee_paid"
	StatusReturnReceiptIssued Status = "return_receipt_issued"
	StatusCheckDelivered      Status = "check_delivered"
	StatusCommissionPaid      Status = "commission_paid"
	StatusCompleted           Status = "completed"
	StatusRejected            Status = "rejected"
	StatusDisbursed           Status = "disbursed"
)

// OverrideStatuses is the closed set the admin may set directly. Any of
// these is reachable from any state; no transition table is enforced.
var OverrideStatuses = []Status{
	StatusPending, StatusUnderReview, StatusApproved,
	StatusRejected, StatusDisbursed, StatusCompleted,
}

type DocumentCategory string

const (
	CategoryCustomer       DocumentCategory = "customer"
	CategoryGuarantor      DocumentCategory = "guarantor"
	CategoryCreditCheck    DocumentCategory = "credit_check"
	CategoryContract       DocumentCategory = "contract"
	CategoryCheck          DocumentCategory = "check"
	CategoryReceipt        DocumentCategory = "receipt"
	CategoryFeeReceipt     DocumentCategory = "fee_receipt"
	CategoryCheckDelivery  DocumentCategory = "check_delivery"
	CategoryWalletRecharge DocumentCategory = "wallet_recharge"
)

type Document struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Category    DocumentCategory `json:"category"`
	URL         string           `json:"url"`
	UploadedAt  time.Time        `json:"uploadedAt"`
	GuarantorID string           `json:"guarantorId,omitempty"`
}

type GuarantorStatus string

const (
	GuarantorPending  GuarantorStatus = "pending"
	GuarantorApproved GuarantorStatus = "approved"
	GuarantorRejected GuarantorStatus = "rejected"
)

// Guarantor is owned by exactly one loan; its approval status is set
// by the admin independently of the parent loan's status.
type Guarantor struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	NationalID   string            `json:"nationalId"`
	Relationship string            `json:"relationship"`
	Documents    []Document        `json:"documents"`
	FormData     map[string]string `json:"formData,omitempty"`
	Status       GuarantorStatus   `json:"status,omitempty"`
}

// EffectiveStatus treats an absent status as pending.
func (g *Guarantor) EffectiveStatus() GuarantorStatus {
	if g.Status == "" {
		return GuarantorPending
	}
	return g.Status
}

type CreditCheck struct {
	Paid       bool              `json:"paid"`
	Amount     float64           `json:"amount"`
	ReceiptURL string            `json:"receiptUrl,omitempty"`
	PaidAt     *time.Time        `json:"paidAt,omitempty"`
	FormData   map[string]string `json:"formData,omitempty"`
}

type CheckInfo struct {
	Amount       float64    `json:"amount"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Title        string     `json:"title"`
	CustomerName string     `json:"customerName"`
	SayadNumber  string     `json:"sayadNumber,omitempty"`
	BankName     string     `json:"bankName,omitempty"`
	OwnerName    string     `json:"ownerName,omitempty"`
	UploadedAt   *time.Time `json:"uploadedAt,omitempty"`
	UploadedBy   string     `json:"uploadedBy,omitempty"`
}

type FeePayment struct {
	Amount        float64    `json:"amount"`
	AccountNumber string     `json:"accountNumber,omitempty"`
	ShebaNumber   string     `json:"shebaNumber,omitempty"`
	ReceiptURL    string     `json:"receiptUrl,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmedAt,omitempty"`
	ConfirmedBy   string     `json:"confirmedBy,omitempty"`
}

type ReturnReceipt struct {
	GeneratedAt        *time.Time `json:"generatedAt,omitempty"`
	GeneratedBy        string     `json:"generatedBy,omitempty"`
	DownloadedAt       *time.Time `json:"downloadedAt,omitempty"`
	DownloadedBy       string     `json:"downloadedBy,omitempty"`
	DeliveryReceiptURL string     `json:"deliveryReceiptUrl,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
}

type Contract struct {
	FileURL               string     `json:"fileUrl,omitempty"`
	SentAt                *time.Time `json:"sentAt,omitempty"`
	SentBy                string     `json:"sentBy,omitempty"`
	ApprovedAt            *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy            string     `json:"approvedBy,omitempty"`
	GuaranteeCheckURL     string     `json:"guaranteeCheckUrl,omitempty"`
	FeeReceiptURL         string     `json:"feeReceiptUrl,omitempty"`
	ReleaseOrderURL       string     `json:"releaseOrderUrl,omitempty"`
	CheckReturnReceiptURL string     `json:"checkReturnReceiptUrl,omitempty"`
	SignedAt              *time.Time `json:"signedAt,omitempty"`
	SignedBy              string     `json:"signedBy,omitempty"`
}

type Purpose string

const (
	PurposeRefaheston      Purpose = "refaheston"
	PurposeAgent           Purpose = "agent"
	PurposeCash            Purpose = "cash"
	PurposeCashUnavailable Purpose = "cash_unavailable"
)

// Loan is the central entity. CreditCheckFee and Commission are
// snapshots taken from the loan type at creation time; later edits to
// the loan type never touch existing loans.
type Loan struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	AgentID       string `json:"agentId"`
	AgentName     string `json:"agentName"`

	Amount       float64 `json:"amount"`
	Status       Status  `json:"status"`
	LoanType     string  `json:"loanType"`
	LoanTypeName string  `json:"loanTypeName"`
	Purpose      Purpose `json:"loanPurpose,omitempty"`

	CreditCheckFee float64 `json:"creditCheckFee"`
	Commission     float64 `json:"commission"`

	Guarantors  []Guarantor `json:"guarantors"`
	Documents   []Document  `json:"documents"`
	CreditCheck CreditCheck `json:"creditCheck"`
	Contract    Contract    `json:"contract"`

	CheckInfo     *CheckInfo     `json:"checkInfo,omitempty"`
	FeePayment    *FeePayment    `json:"feePayment,omitempty"`
	ReturnReceipt *ReturnReceipt `json:"returnReceipt,omitempty"`

	CommissionPaid   bool       `json:"commissionPaid,omitempty"`
	CommissionPaidAt *time.Time `json:"commissionPaidAt,omitempty"`

	FormData               map[string]string `json:"formData,omitempty"`
	PurchaseFromRefaheston bool              `json:"purchaseFromRefaheston,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
