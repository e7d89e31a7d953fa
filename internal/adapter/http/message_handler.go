package http

import (
	"net/http"

	"loanflow/internal/domain/user"
	"loanflow/internal/usecase/message"

	"github.com/labstack/echo/v4"
)

type MessageHandler struct{ uc *message.Usecase }

func NewMessageHandler(uc *message.Usecase) *MessageHandler { return &MessageHandler{uc: uc} }

type sendLoanMessageReq struct {
	SenderID   string `json:"senderId"   validate:"required"`
	SenderName string `json:"senderName"`
	SenderRole string `json:"senderRole" validate:"required,oneof=admin agent customer"`
	Message    string `json:"message"    validate:"required"`
}

func (h *MessageHandler) SendLoanMessage(c echo.Context) error {
	var req sendLoanMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	msg, err := h.uc.SendLoanMessage(c.Request().Context(), message.SendLoanMessageInput{
		LoanID:     c.Param("loan_id"),
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		SenderRole: user.Role(req.SenderRole),
		Message:    req.Message,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) LoanThread(c echo.Context) error {
	msgs, err := h.uc.LoanThread(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, msgs)
}

type sendDirectMessageReq struct {
	SenderID    string `json:"senderId"    validate:"required"`
	SenderName  string `json:"senderName"`
	SenderRole  string `json:"senderRole"  validate:"required,oneof=admin agent"`
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content"     validate:"required"`
}

func (h *MessageHandler) SendDirectMessage(c echo.Context) error {
	var req sendDirectMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	msg, err := h.uc.SendDirectMessage(c.Request().Context(), message.SendDirectMessageInput{
		SenderID:    req.SenderID,
		SenderName:  req.SenderName,
		SenderRole:  user.Role(req.SenderRole),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	})
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) DirectThread(c echo.Context) error {
	a, b := c.QueryParam("a"), c.QueryParam("b")
	if a == "" || b == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing a/b query params"})
	}
	msgs, err := h.uc.DirectThread(c.Request().Context(), a, b)
	if err != nil {
		return c.JSON(domainError(err))
	}
	return c.JSON(http.StatusOK, msgs)
}
