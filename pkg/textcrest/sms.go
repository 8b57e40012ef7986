package textcrest

import (
	"context"
	"net/url"
	"strconv"
)

const (
	sendPath    = "/sms/send"
	historyPath = "/sms/history"
)

// SendRequest describes one send call. The API documents a 1600 character
// message cap and an 11 character sender ID cap; both are enforced
// server-side and not checked here.
type SendRequest struct {
	To       Recipients `json:"to"`
	Message  string     `json:"message"`
	SenderID string     `json:"senderId,omitempty"`
}

// Send submits a message to one or more recipients. Invalid numbers come back
// as an *APIError with code INVALID_PHONE, not as a local failure.
func (c *Client) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	var out SendResult
	if err := c.post(ctx, sendPath, req, &out); err != nil {
		return SendResult{}, err
	}
	return out, nil
}

// HistoryOptions narrows a History call. Zero values are omitted from the
// query string, leaving the server defaults in effect.
type HistoryOptions struct {
	Page   int
	Limit  int
	Status MessageStatus
}

// History returns one page of previously submitted messages.
func (c *Client) History(ctx context.Context, opts HistoryOptions) (HistoryPage, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}

	var out HistoryPage
	if err := c.get(ctx, historyPath, query, &out); err != nil {
		return HistoryPage{}, err
	}
	return out, nil
}
