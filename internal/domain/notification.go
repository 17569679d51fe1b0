package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationAlert   NotificationType = "alert"
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Recipient is either a broadcast to every user or a single user.
// The zero value is a broadcast.
type Recipient struct {
	userID uuid.UUID
}

func Broadcast() Recipient { return Recipient{} }

func UserRecipient(id uuid.UUID) Recipient { return Recipient{userID: id} }

func (r Recipient) IsBroadcast() bool { return r.userID == uuid.Nil }

// UserID returns the target user; ok is false for broadcasts.
func (r Recipient) UserID() (uuid.UUID, bool) {
	return r.userID, !r.IsBroadcast()
}

// Ptr is the nullable column form.
func (r Recipient) Ptr() *uuid.UUID {
	if r.IsBroadcast() {
		return nil
	}
	id := r.userID
	return &id
}

func RecipientFromPtr(id *uuid.UUID) Recipient {
	if id == nil {
		return Broadcast()
	}
	return UserRecipient(*id)
}

// VisibleTo reports whether userID should see a notification sent to r.
func (r Recipient) VisibleTo(userID uuid.UUID) bool {
	return r.IsBroadcast() || r.userID == userID
}

func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.IsBroadcast() {
		return []byte("null"), nil
	}
	return json.Marshal(r.userID)
}

func (r *Recipient) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = Broadcast()
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	*r = UserRecipient(id)
	return nil
}

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Recipient Recipient        `json:"recipient"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationEvent is what leaves the process through the delivery queue.
type NotificationEvent struct {
	NotificationID uuid.UUID        `json:"notification_id"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	Recipient      Recipient        `json:"recipient"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (n *Notification) Event() NotificationEvent {
	return NotificationEvent{
		NotificationID: n.ID,
		Message:        n.Message,
		Type:           n.Type,
		Recipient:      n.Recipient,
		CreatedAt:      n.CreatedAt,
	}
}
