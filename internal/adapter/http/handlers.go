package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// RegisterRoutes wires every handler onto the echo instance. Mutating
// endpoints that clients are known to retry go through the idempotency
// middleware, applied by the caller.
func RegisterRoutes(e *echo.Echo, idem echo.MiddlewareFunc,
	authH *AuthHandler, loanH *LoanHandler, userH *UserHandler,
	settingsH *SettingsHandler, msgH *MessageHandler) {

	h := NewHandler()
	e.GET("/health", h.Health)

	e.POST("/auth/login", authH.Login)
	e.POST("/auth/logout", authH.Logout)
	e.GET("/auth/me", authH.Me)
	e.POST("/auth/register", authH.RegisterAgent, idem)
	e.GET("/auth/contract", authH.ContractText)

	e.POST("/loans", loanH.CreateLoan, idem)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/loans/:loan_id/stages", loanH.GetLoanStages)
	e.PUT("/loans/:loan_id/status", loanH.UpdateStatus)
	e.POST("/loans/:loan_id/guarantors", loanH.AddGuarantor, idem)
	e.PUT("/loans/:loan_id/guarantors/:guarantor_id/status", loanH.SetGuarantorStatus)
	e.POST("/loans/:loan_id/guarantors/:guarantor_id/documents", loanH.AddGuarantorDocument)
	e.POST("/loans/:loan_id/documents", loanH.AttachDocument)
	e.POST("/loans/:loan_id/credit-check/pay", loanH.PayCreditCheck, idem)
	e.POST("/loans/:loan_id/fee-receipt", loanH.AttachFeeReceipt)
	e.POST("/loans/:loan_id/wallet-recharge-receipt", loanH.AttachWalletRechargeReceipt)
	e.POST("/loans/:loan_id/check", loanH.ReceiveCheck, idem)
	e.POST("/loans/:loan_id/return-receipt", loanH.IssueReturnReceipt)
	e.POST("/loans/:loan_id/check-delivery-receipt", loanH.UploadCheckDeliveryReceipt)
	e.POST("/loans/:loan_id/sign-contract", loanH.SignContract, idem)

	e.GET("/users/agents", userH.ListAgents)
	e.GET("/users/customers", userH.ListCustomers)
	e.POST("/users/agents", userH.AddAgent, idem)
	e.POST("/users/customers", userH.AddCustomer, idem)
	e.DELETE("/users/agents/:user_id", userH.RemoveAgent)
	e.PUT("/users/:user_id/toggle-active", userH.ToggleActive)
	e.POST("/users/:user_id/signed-contract", userH.UploadSignedContract)
	e.GET("/users/:user_id/contract", userH.GetContractText)
	e.POST("/users/:user_id/share-credentials", userH.ShareCredentials)

	e.GET("/settings", settingsH.GetSettings)
	e.POST("/settings/loan-types", settingsH.AddLoanType)
	e.DELETE("/settings/loan-types/:loan_type_id", settingsH.DeleteLoanType)
	e.PUT("/settings/bank-details", settingsH.UpdateBankDetails)
	e.PUT("/settings/fee-payment-account", settingsH.UpdateFeePaymentAccount)
	e.PUT("/settings/wallet-recharge-account", settingsH.UpdateWalletRechargeAccount)

	e.POST("/loans/:loan_id/messages", msgH.SendLoanMessage)
	e.GET("/loans/:loan_id/messages", msgH.LoanThread)
	e.POST("/messages/direct", msgH.SendDirectMessage)
	e.GET("/messages/direct", msgH.DirectThread)
}
