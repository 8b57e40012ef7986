package reporters

import (
	"time"

	"github.com/textcrest/textcrest-go/pkg/textcrest"
)

// Report is the payload forwarded downstream after a successful send.
type Report struct {
	MessageID  string    `json:"message_id"`
	Recipients []string  `json:"recipients"`
	SenderID   string    `json:"sender_id,omitempty"`
	Status     string    `json:"status"`
	Units      int       `json:"units"`
	Cost       float64   `json:"cost"`
	SentAt     time.Time `json:"sent_at"`
}

// NewReport builds a Report from the API's send acknowledgement.
func NewReport(result textcrest.SendResult, recipients []string, senderID string) Report {
	return Report{
		MessageID:  result.MessageID,
		Recipients: recipients,
		SenderID:   senderID,
		Status:     result.Status,
		Units:      result.Units,
		Cost:       result.Cost,
		SentAt:     time.Now().UTC(),
	}
}
