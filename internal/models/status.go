package models

import "time"

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	StatusInProgress AuctionStatus = "InProgress"
	StatusClosed     AuctionStatus = "Closed"
	StatusExpired    AuctionStatus = "Expired"
)

// Terminal reports whether no further transition may leave the status.
func (s AuctionStatus) Terminal() bool {
	return s == StatusClosed || s == StatusExpired
}

// DeriveStatus computes the status an auction should have at the given
// instant. Reads use it for a view-only refresh; the status sweep is the
// only writer of persisted status.
func DeriveStatus(now, endTime time.Time, hasBidder bool) AuctionStatus {
	if now.Before(endTime) {
		return StatusInProgress
	}
	if hasBidder {
		return StatusClosed
	}
	return StatusExpired
}
