package http

import (
	"net/http"

	domainsettings "loanflow/internal/domain/settings"
	"loanflow/internal/usecase/settings"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct{ uc *settings.Usecase }

func NewSettingsHandler(uc *settings.Usecase) *SettingsHandler { return &SettingsHandler{uc: uc} }

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	st, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, st)
}

type addLoanTypeReq struct {
	ID                 string `json:"id"   validate:"required"`
	Name               string `json:"name" validate:"required"`
	CreditCheckFee     string `json:"creditCheckFee"`
	CommissionRate     string `json:"commissionRate"`
	RequiredFields     string `json:"requiredFields"`
	RequiresGuarantors bool   `json:"requiresGuarantors"`
	MinGuarantors      int    `json:"minGuarantors"`
	MaxGuarantors      int    `json:"maxGuarantors"`
	GuarantorFields    string `json:"guarantorFields"`
}

func (h *SettingsHandler) AddLoanType(c echo.Context) error {
	var req addLoanTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.uc.AddLoanType(c.Request().Context(), settings.AddLoanTypeInput(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, st)
}

func (h *SettingsHandler) DeleteLoanType(c echo.Context) error {
	st, err := h.uc.DeleteLoanType(c.Request().Context(), c.Param("loan_type_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, st)
}

type bankDetailsReq struct {
	BankCardNumber       string `json:"bankCardNumber"`
	AccountNumber        string `json:"accountNumber"`
	ShebaNumber          string `json:"shebaNumber"`
	CheckOwnerNationalID string `json:"checkOwnerNationalId"`
}

func (h *SettingsHandler) UpdateBankDetails(c echo.Context) error {
	var req bankDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	st, err := h.uc.UpdateBankDetails(c.Request().Context(), settings.BankDetailsInput(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, st)
}

type bankAccountReq struct {
	AccountNumber     string `json:"accountNumber" validate:"required"`
	ShebaNumber       string `json:"shebaNumber"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

func (h *SettingsHandler) UpdateFeePaymentAccount(c echo.Context) error {
	var req bankAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.uc.UpdateFeePaymentAccount(c.Request().Context(), domainsettings.BankAccount(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, st)
}

func (h *SettingsHandler) UpdateWalletRechargeAccount(c echo.Context) error {
	var req bankAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.uc.UpdateWalletRechargeAccount(c.Request().Context(), domainsettings.BankAccount(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, st)
}
