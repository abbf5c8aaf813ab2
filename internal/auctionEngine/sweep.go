package auction

import (
	"fmt"
	"sync"
	"time"

	model "card-auction/internal/models"
	"card-auction/utils"
)

// CloseExpiredAuctions finalizes every auction whose end time has passed.
// A failure on one auction is logged and does not abort the batch.
// Returns the number of auctions transitioned into a terminal state.
func (e *AuctionEngine) CloseExpiredAuctions() (int, error) {
	now := e.now()
	ended, err := e.store.ListEndedInProgress(now)
	if err != nil {
		return 0, fmt.Errorf("engine: sweep: %w", err)
	}

	finalized := 0
	for _, a := range ended {
		ok, err := e.finalizeAuction(a.AuctionID, now)
		if err != nil {
			utils.Error("engine: sweep: finalize failed", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		if ok {
			finalized++
		}
	}
	return finalized, nil
}

// finalizeAuction transitions one auction under its lock. The stored
// status is re-checked after locking: if another tick already finalized
// it, no side effects fire again.
func (e *AuctionEngine) finalizeAuction(auctionID string, now time.Time) (bool, error) {
	unlock := e.locks.lock(auctionID)
	defer unlock()

	a, err := e.store.GetAuction(auctionID)
	if err != nil {
		return false, err
	}
	if a.Status.Terminal() {
		return false, nil
	}

	next := model.DeriveStatus(now, a.EndTime, a.HasBidder())
	if next == model.StatusInProgress {
		return false, nil
	}
	if err := e.store.UpdateAuctionStatus(a.AuctionID, next); err != nil {
		return false, err
	}

	cardName := a.CardID
	if card, err := e.store.GetCard(a.CardID); err == nil {
		cardName = card.CardName
	}

	if next == model.StatusClosed {
		winner := fmt.Sprintf("You won the auction for %s with a final bid of %s.", cardName, a.HighestBid)
		seller := fmt.Sprintf("Your auction for %s has ended. Final bid: %s.", cardName, a.HighestBid)
		e.sendNotification(*a.HighestBidderID, a, winner)
		e.sendNotification(a.SellerID, a, seller)
	} else {
		e.sendNotification(a.SellerID, a, fmt.Sprintf("Your auction for %s has ended with no bids.", cardName))
	}
	return true, nil
}

// Sweeper runs the status sweep on a fixed interval, independent of API
// traffic, so auctions close even with no concurrent reads.
type Sweeper struct {
	engine   *AuctionEngine
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewSweeper creates a Sweeper with the given tick interval.
func NewSweeper(engine *AuctionEngine, interval time.Duration) *Sweeper {
	return &Sweeper{
		engine:   engine,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background tick loop.
func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.engine.CloseExpiredAuctions()
			if err != nil {
				utils.Error("sweeper: tick failed", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				utils.Info("sweeper: auctions finalized", map[string]any{"count": n})
			}
		case <-s.stop:
			return
		}
	}
}

// Stop halts the tick loop and waits for it to exit. Safe to call more
// than once; every caller blocks until the loop is down.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}
