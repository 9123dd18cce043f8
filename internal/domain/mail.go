package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamMailOutgoing carries mails waiting to be delivered by the worker.
const StreamMailOutgoing = "stream:mail:outgoing"

// MailMessage - письмо, публикуемое в стрим
type MailMessage struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
