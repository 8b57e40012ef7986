package textcrest

import (
	"encoding/json"
	"time"
)

// Recipients holds the destination set of a send request. The API accepts
// either a single phone number or an array; Recipients marshals as a bare
// string when built with To and as an array when built with ToAll.
type Recipients struct {
	one  string
	many []string
}

// To addresses a message to a single phone number.
func To(number string) Recipients {
	return Recipients{one: number}
}

// ToAll addresses a message to an ordered list of phone numbers.
func ToAll(numbers ...string) Recipients {
	return Recipients{many: numbers}
}

// Numbers returns the recipients as a slice regardless of how they were built.
func (r Recipients) Numbers() []string {
	if r.many != nil {
		out := make([]string, len(r.many))
		copy(out, r.many)
		return out
	}
	if r.one == "" {
		return nil
	}
	return []string{r.one}
}

func (r Recipients) MarshalJSON() ([]byte, error) {
	if r.many != nil {
		return json.Marshal(r.many)
	}
	return json.Marshal(r.one)
}

// MessageStatus is the server-side delivery state of a message.
type MessageStatus string

const (
	StatusPending   MessageStatus = "pending"
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusFailed    MessageStatus = "failed"
)

// SendResult is the server's acknowledgement of a send request.
type SendResult struct {
	MessageID string  `json:"messageId"`
	Status    string  `json:"status"`
	Accepted  int     `json:"accepted"`
	Rejected  int     `json:"rejected"`
	Units     int     `json:"units"`
	Cost      float64 `json:"cost"`
}

// Message is one entry of the message history.
type Message struct {
	ID        string        `json:"id"`
	To        string        `json:"to"`
	Message   string        `json:"message"`
	SenderID  string        `json:"senderId,omitempty"`
	Status    MessageStatus `json:"status"`
	Units     int           `json:"units"`
	Cost      float64       `json:"cost"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Pagination describes the server-side paging of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// HistoryPage is one page of message history.
type HistoryPage struct {
	Data       []Message  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Balance is the prepaid SMS credit state of the wallet.
type Balance struct {
	Balance    float64 `json:"balance"`
	Currency   string  `json:"currency"`
	TotalSpent float64 `json:"totalSpent"`
	TotalSent  int     `json:"totalSent"`
}

// Transaction is one wallet ledger entry (top-up or send charge).
type Transaction struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balanceAfter"`
	Reference    string    `json:"reference,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionPage is one page of wallet transactions.
type TransactionPage struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}
