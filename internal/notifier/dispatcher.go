package notifier

import (
	"fmt"
	"time"

	model "card-auction/internal/models"
	"card-auction/internal/repository"
	"card-auction/utils"
)

// LivePayload is the JSON frame delivered over a live connection.
type LivePayload struct {
	Type      string  `json:"type"`
	AuctionID *string `json:"auction_id,omitempty"`
	Message   string  `json:"message"`
	TimeSent  string  `json:"time_sent"`
}

// Dispatcher durably records notifications and opportunistically pushes
// them to live connections. It never originates state changes.
type Dispatcher struct {
	store    repository.NotificationDB
	registry *LiveRegistry
	now      func() time.Time
}

// NewDispatcher creates a dispatcher over the given store and registry.
func NewDispatcher(store repository.NotificationDB, registry *LiveRegistry) *Dispatcher {
	return &Dispatcher{
		store:    store,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Notify inserts the durable notification record. The caller is
// responsible for having resolved the receiver first.
func (d *Dispatcher) Notify(receiverID string, auctionID *string, message string) (model.Notification, error) {
	n := model.Notification{
		NotificationID: utils.GenerateID(),
		ReceiverID:     receiverID,
		AuctionID:      auctionID,
		Message:        message,
		TimeSent:       d.now(),
		IsRead:         false,
	}
	if err := d.store.InsertNotification(n); err != nil {
		return model.Notification{}, fmt.Errorf("notifier: %w", err)
	}
	return n, nil
}

// PushLive attempts at-most-once live delivery of a persisted
// notification. No registered connection, or a failed write, is a
// logged no-op: the stored row remains the record of truth.
func (d *Dispatcher) PushLive(key string, n model.Notification) {
	conn, ok := d.registry.Get(key)
	if !ok {
		return
	}

	payload := LivePayload{
		Type:      "notification",
		AuctionID: n.AuctionID,
		Message:   n.Message,
		TimeSent:  n.TimeSent.UTC().Format(time.RFC3339),
	}
	if err := conn.WriteJSON(payload); err != nil {
		utils.Warn("notifier: live push failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}
