// Package message models the two chat scopes. They live in two
// separate storage collections with different schemas and are never
// merged; the filtering logic of each client depends on that split.
package message

import (
	"time"

	"loanflow/internal/domain/user"
)

// LoanMessage is the customer↔agent chat, keyed by loan id. Timestamps
// are epoch milliseconds in storage, as the loan chat always wrote them.
type LoanMessage struct {
	ID         string    `json:"id"`
	LoanID     string    `json:"loanId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	SenderRole user.Role `json:"senderRole"`
	Message    string    `json:"message"`
	Timestamp  int64     `json:"timestamp"`
}

// DirectMessage is the admin↔agent chat, keyed by the sender/recipient
// pair. Timestamps are RFC3339 strings in storage.
type DirectMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	SenderRole  user.Role `json:"senderRole"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"` // always "admin-agent"
}

const DirectMessageType = "admin-agent"
