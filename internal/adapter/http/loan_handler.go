package http

import (
	"net/http"

	domainloan "loanflow/internal/domain/loan"
	"loanflow/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	CustomerID             string            `json:"customerId"    validate:"required"`
	CustomerName           string            `json:"customerName"  validate:"required"`
	CustomerPhone          string            `json:"customerPhone"`
	AgentID                string            `json:"agentId"       validate:"required"`
	AgentName              string            `json:"agentName"`
	Amount                 float64           `json:"amount"        validate:"required,gt=0"`
	LoanType               string            `json:"loanType"      validate:"required"`
	Purpose                string            `json:"loanPurpose"   validate:"omitempty,oneof=refaheston agent cash cash_unavailable"`
	PurchaseFromRefaheston bool              `json:"purchaseFromRefaheston"`
	FormData               map[string]string `json:"formData"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Create(c.Request().Context(), loan.CreateInput{
		CustomerID:             req.CustomerID,
		CustomerName:           req.CustomerName,
		CustomerPhone:          req.CustomerPhone,
		AgentID:                req.AgentID,
		AgentName:              req.AgentName,
		Amount:                 req.Amount,
		LoanTypeID:             req.LoanType,
		Purpose:                domainloan.Purpose(req.Purpose),
		PurchaseFromRefaheston: req.PurchaseFromRefaheston,
		FormData:               req.FormData,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

// ListLoans serves the three role-scoped views off query params.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		loans []domainloan.Loan
		err   error
	)
	switch {
	case c.QueryParam("agentId") != "":
		loans, err = h.uc.ListByAgent(ctx, c.QueryParam("agentId"))
	case c.QueryParam("customerId") != "":
		loans, err = h.uc.ListByCustomer(ctx, c.QueryParam("customerId"))
	default:
		loans, err = h.uc.List(ctx)
	}
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, loans)
}

// GetLoanStages exposes the derived progress view alongside the raw
// record so clients never re-implement the predicates.
func (h *LoanHandler) GetLoanStages(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	percent, show := domainloan.Progress(l.Status)
	return c.JSON(http.StatusOK, map[string]any{
		"stages":        domainloan.Stages(l),
		"steps":         domainloan.ProgressSteps(l.Status),
		"percent":       percent,
		"showProgress":  show,
		"statusLabel":   l.Status.Label(),
		"statusColor":   l.Status.Color(),
		"currentStatus": l.Status,
	})
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("loan_id"), domainloan.Status(req.Status))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

type guarantorReq struct {
	Name         string            `json:"name"       validate:"required"`
	Phone        string            `json:"phone"`
	NationalID   string            `json:"nationalId"`
	Relationship string            `json:"relationship"`
	FormData     map[string]string `json:"formData"`
}

func (h *LoanHandler) AddGuarantor(c echo.Context) error {
	var req guarantorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.AddGuarantor(c.Request().Context(), c.Param("loan_id"), loan.GuarantorInput{
		Name:         req.Name,
		Phone:        req.Phone,
		NationalID:   req.NationalID,
		Relationship: req.Relationship,
		FormData:     req.FormData,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, l)
}

type guarantorStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (h *LoanHandler) SetGuarantorStatus(c echo.Context) error {
	var req guarantorStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.SetGuarantorStatus(c.Request().Context(),
		c.Param("loan_id"), c.Param("guarantor_id"), domainloan.GuarantorStatus(req.Status))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

type documentReq struct {
	Name        string `json:"name"     validate:"required"`
	Type        string `json:"type"`
	Category    string `json:"category" validate:"required"`
	URL         string `json:"url"      validate:"required,dataurl"`
	GuarantorID string `json:"guarantorId"`
}

func (h *LoanHandler) AttachDocument(c echo.Context) error {
	var req documentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.AttachDocument(c.Request().Context(), c.Param("loan_id"), loan.DocumentInput{
		Name:        req.Name,
		Type:        req.Type,
		Category:    domainloan.DocumentCategory(req.Category),
		URL:         req.URL,
		GuarantorID: req.GuarantorID,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) AddGuarantorDocument(c echo.Context) error {
	var req documentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, err := h.uc.AddGuarantorDocument(c.Request().Context(),
		c.Param("loan_id"), c.Param("guarantor_id"), loan.DocumentInput{
			Name: req.Name,
			Type: req.Type,
			URL:  req.URL,
		})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, l)
}

type receiptReq struct {
	Name string `json:"name"`
	URL  string `json:"url" validate:"required,dataurl"`
}

func (h *LoanHandler) PayCreditCheck(c echo.Context) error {
	var req receiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.PayCreditCheck(c.Request().Context(), c.Param("loan_id"), req.Name, req.URL)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) AttachFeeReceipt(c echo.Context) error {
	var req receiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, err := h.uc.AttachFeeReceipt(c.Request().Context(), c.Param("loan_id"), loan.DocumentInput{
		Name: req.Name, Type: "image", URL: req.URL,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) AttachWalletRechargeReceipt(c echo.Context) error {
	var req receiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, err := h.uc.AttachWalletRechargeReceipt(c.Request().Context(), c.Param("loan_id"), loan.DocumentInput{
		Name: req.Name, Type: "image", URL: req.URL,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

type receiveCheckReq struct {
	ImageURL    string `json:"imageUrl"    validate:"required,dataurl"`
	SayadNumber string `json:"sayadNumber"`
	BankName    string `json:"bankName"`
	OwnerName   string `json:"ownerName"`
	UploadedBy  string `json:"uploadedBy"`
}

func (h *LoanHandler) ReceiveCheck(c echo.Context) error {
	var req receiveCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.ReceiveCheck(c.Request().Context(), c.Param("loan_id"), loan.CheckUploadInput{
		ImageURL:    req.ImageURL,
		SayadNumber: req.SayadNumber,
		BankName:    req.BankName,
		OwnerName:   req.OwnerName,
		UploadedBy:  req.UploadedBy,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

type issuedByReq struct {
	IssuedBy string `json:"issuedBy"`
}

func (h *LoanHandler) IssueReturnReceipt(c echo.Context) error {
	var req issuedByReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, err := h.uc.IssueReturnReceipt(c.Request().Context(), c.Param("loan_id"), req.IssuedBy)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) UploadCheckDeliveryReceipt(c echo.Context) error {
	var req receiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.UploadCheckDeliveryReceipt(c.Request().Context(), c.Param("loan_id"), req.URL)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}

type signContractReq struct {
	SignedBy string `json:"signedBy" validate:"required"`
}

func (h *LoanHandler) SignContract(c echo.Context) error {
	var req signContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.SignContract(c.Request().Context(), c.Param("loan_id"), req.SignedBy)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, l)
}
