package message

import (
	"context"
	"sort"
	"time"

	"loanflow/internal/domain/message"
	"loanflow/internal/domain/user"
	"loanflow/pkg/id"
)

// Usecase spans both chat scopes. The two collections stay schema- and
// storage-separate; nothing here ever moves a message across scopes.
type Usecase struct {
	loanMsgs   message.LoanMessageRepository
	directMsgs message.DirectMessageRepository
}

func NewUsecase(loanMsgs message.LoanMessageRepository, directMsgs message.DirectMessageRepository) *Usecase {
	return &Usecase{loanMsgs: loanMsgs, directMsgs: directMsgs}
}

type SendLoanMessageInput struct {
	LoanID     string
	SenderID   string
	SenderName string
	SenderRole user.Role
	Message    string
}

// SendLoanMessage appends to the loan chat. Timestamps are epoch
// milliseconds, matching every record already in the collection.
func (u *Usecase) SendLoanMessage(ctx context.Context, in SendLoanMessageInput) (*message.LoanMessage, error) {
	msgs, err := u.loanMsgs.All(ctx)
	if err != nil {
		return nil, err
	}
	msg := message.LoanMessage{
		ID:         id.New("msg"),
		LoanID:     in.LoanID,
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		SenderRole: in.SenderRole,
		Message:    in.Message,
		Timestamp:  time.Now().UnixMilli(),
	}
	if err := u.loanMsgs.ReplaceAll(ctx, append(msgs, msg)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// LoanThread returns the loan's chat in chronological order.
func (u *Usecase) LoanThread(ctx context.Context, loanID string) ([]message.LoanMessage, error) {
	msgs, err := u.loanMsgs.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]message.LoanMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.LoanID == loanID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

type SendDirectMessageInput struct {
	SenderID    string
	SenderName  string
	SenderRole  user.Role
	RecipientID string
	Content     string
}

func (u *Usecase) SendDirectMessage(ctx context.Context, in SendDirectMessageInput) (*message.DirectMessage, error) {
	msgs, err := u.directMsgs.All(ctx)
	if err != nil {
		return nil, err
	}
	msg := message.DirectMessage{
		ID:          id.New("msg"),
		SenderID:    in.SenderID,
		SenderName:  in.SenderName,
		SenderRole:  in.SenderRole,
		RecipientID: in.RecipientID,
		Content:     in.Content,
		Timestamp:   time.Now().UTC(),
		Type:        message.DirectMessageType,
	}
	if err := u.directMsgs.ReplaceAll(ctx, append(msgs, msg)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DirectThread returns the admin↔agent conversation between the two
// ids, both directions, chronological.
func (u *Usecase) DirectThread(ctx context.Context, a, b string) ([]message.DirectMessage, error) {
	msgs, err := u.directMsgs.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]message.DirectMessage, 0, len(msgs))
	for _, m := range msgs {
		pair := (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a)
		if pair && m.Type == message.DirectMessageType {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
