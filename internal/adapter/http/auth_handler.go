package http

import (
	"net/http"

	"loanflow/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	u, err := h.uc.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return c.JSON(domainError(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	u, err := h.uc.CurrentUser(c.Request().Context())
	if err != nil {
		return c.JSON(domainError(err))
	}
	if u == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(http.StatusOK, u)
}

type registerAgentReq struct {
	FirstName           string `json:"firstName"           validate:"required"`
	LastName            string `json:"lastName"            validate:"required"`
	NationalID          string `json:"nationalId"          validate:"required"`
	WorkDomain          string `json:"workDomain"`
	WorkExperienceYears int    `json:"workExperienceYears"`
	Address             string `json:"address"`
	PostalCode          string `json:"postalCode"`
	Phone               string `json:"phone"               validate:"required"`
	AcceptContract      bool   `json:"acceptContract"`
}

func (h *AuthHandler) RegisterAgent(c echo.Context) error {
	var req registerAgentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if !req.AcceptContract {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "contract must be accepted"})
	}
	agent, pass, err := h.uc.RegisterAgent(c.Request().Context(), auth.RegisterAgentInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		NationalID:          req.NationalID,
		WorkDomain:          req.WorkDomain,
		WorkExperienceYears: req.WorkExperienceYears,
		Address:             req.Address,
		PostalCode:          req.PostalCode,
		Phone:               req.Phone,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	// The generated credential is returned exactly once, here.
	return c.JSON(http.StatusCreated, map[string]any{
		"user":     agent,
		"password": pass,
	})
}

func (h *AuthHandler) ContractText(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"text": auth.ContractText})
}
