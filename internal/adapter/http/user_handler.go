package http

import (
	"net/http"

	"loanflow/internal/usecase/user"
	"loanflow/pkg/share"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) ListAgents(c echo.Context) error {
	agents, err := h.uc.ListAgents(c.Request().Context())
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, agents)
}

func (h *UserHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, customers)
}

type addUserReq struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (h *UserHandler) AddAgent(c echo.Context) error {
	var req addUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	agent, pass, err := h.uc.AddAgent(c.Request().Context(), user.AddAgentInput(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"user":     agent,
		"password": pass,
	})
}

func (h *UserHandler) AddCustomer(c echo.Context) error {
	var req addUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	customer, err := h.uc.AddCustomer(c.Request().Context(), user.AddCustomerInput(req))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *UserHandler) RemoveAgent(c echo.Context) error {
	if err := h.uc.RemoveAgent(c.Request().Context(), c.Param("user_id")); err != nil {
		return c.JSON(domainError(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) ToggleActive(c echo.Context) error {
	u, err := h.uc.ToggleActive(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, u)
}

type signedContractReq struct {
	URL string `json:"url" validate:"required,dataurl"`
}

func (h *UserHandler) UploadSignedContract(c echo.Context) error {
	var req signedContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	u, err := h.uc.UploadSignedContract(c.Request().Context(), c.Param("user_id"), req.URL)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) GetContractText(c echo.Context) error {
	text, err := h.uc.ContractText(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}

type shareReq struct {
	Platform string `json:"platform" validate:"required,platform"`
	LoginURL string `json:"loginUrl"`
}

func (h *UserHandler) ShareCredentials(c echo.Context) error {
	var req shareReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	link, err := h.uc.ShareCredentials(c.Request().Context(),
		c.Param("user_id"), share.Platform(req.Platform), req.LoginURL)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"link": link})
}
