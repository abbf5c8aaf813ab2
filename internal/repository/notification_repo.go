package repository

import (
	"fmt"

	model "card-auction/internal/models"
)

// InsertNotification persists a notification row
func (r *SQLRepo) InsertNotification(n model.Notification) error {
	_, err := r.db.Exec(`
		INSERT INTO notifications(notification_id, receiver_id, auction_id, message, time_sent, is_read)
		VALUES(?,?,?,?,?,?)`,
		n.NotificationID, n.ReceiverID, n.AuctionID, n.Message, n.TimeSent, n.IsRead)
	return mapWriteError(fmt.Sprintf("insert notification for %s", n.ReceiverID), err)
}

// ListNotificationsByReceiver returns a user's notifications, newest first
func (r *SQLRepo) ListNotificationsByReceiver(receiverID string) ([]model.Notification, error) {
	var out []model.Notification
	err := r.db.Select(&out, `
		SELECT * FROM notifications WHERE receiver_id = ? ORDER BY time_sent DESC`, receiverID)
	if err != nil {
		return nil, fmt.Errorf("repository: list notifications for %s: %w", receiverID, err)
	}
	return out, nil
}

// MarkAllNotificationsRead flips the read flag on every unread notification
func (r *SQLRepo) MarkAllNotificationsRead(receiverID string) error {
	_, err := r.db.Exec(`
		UPDATE notifications SET is_read = 1 WHERE receiver_id = ? AND is_read = 0`, receiverID)
	if err != nil {
		return fmt.Errorf("repository: mark notifications read for %s: %w", receiverID, err)
	}
	return nil
}
