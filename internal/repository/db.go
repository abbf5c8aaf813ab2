package repository

import (
	"fmt"
	"strings"

	"card-auction/internal/auctionerrors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLRepo is the sqlite-backed implementation of CatalogDB
type SQLRepo struct {
	db *sqlx.DB
}

// NewSQLRepo wraps an open database handle.
func NewSQLRepo(db *sqlx.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

// OpenDB opens the sqlite database at dsn and bootstraps the schema.
func OpenDB(dsn string) (*sqlx.DB, error) {
	// The _pragma DSN option applies to every connection the pool opens.
	// An Exec'd PRAGMA would only configure the connection that ran it.
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sqlx.Open("sqlite", dsn+sep+"_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("repository: open %s: %w", dsn, err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("repository: ping %s: %w", dsn, err)
	}
	// The modernc driver serializes writers per connection; a single
	// connection avoids SQLITE_BUSY between the API and the sweep.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS profiles(
  user_id      TEXT PRIMARY KEY,
  username     TEXT NOT NULL UNIQUE,
  external_ref TEXT NOT NULL UNIQUE,
  email        TEXT NOT NULL DEFAULT '',
  rating_count INTEGER NOT NULL DEFAULT 0,
  rating_avg   REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS cards(
  card_id      TEXT PRIMARY KEY,
  owner_id     TEXT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
  card_name    TEXT NOT NULL,
  card_quality TEXT NOT NULL DEFAULT 'UNDEFINED',
  is_validated INTEGER NOT NULL DEFAULT 0,
  image_url    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_cards_owner ON cards(owner_id);

CREATE TABLE IF NOT EXISTS auctions(
  auction_id        TEXT PRIMARY KEY,
  card_id           TEXT NOT NULL REFERENCES cards(card_id) ON DELETE RESTRICT,
  seller_id         TEXT NOT NULL REFERENCES profiles(user_id),
  starting_bid      TEXT NOT NULL,
  minimum_increment TEXT NOT NULL,
  highest_bid       TEXT NOT NULL,
  highest_bidder_id TEXT NULL REFERENCES profiles(user_id),
  status            TEXT NOT NULL DEFAULT 'InProgress'
                    CHECK (status IN ('InProgress','Closed','Expired')),
  is_rated          INTEGER NOT NULL DEFAULT 0,
  end_time          TIMESTAMP NOT NULL,
  created_at        TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_auctions_card     ON auctions(card_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_auctions_active_card
  ON auctions(card_id) WHERE status = 'InProgress';
CREATE INDEX IF NOT EXISTS idx_auctions_seller   ON auctions(seller_id);
CREATE INDEX IF NOT EXISTS idx_auctions_bidder   ON auctions(highest_bidder_id);
CREATE INDEX IF NOT EXISTS idx_auctions_end_time ON auctions(status, end_time);

CREATE TABLE IF NOT EXISTS notifications(
  notification_id TEXT PRIMARY KEY,
  receiver_id     TEXT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
  auction_id      TEXT NULL REFERENCES auctions(auction_id),
  message         TEXT NOT NULL,
  time_sent       TIMESTAMP NOT NULL,
  is_read         INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_notifications_receiver ON notifications(receiver_id);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("repository: ensure schema: %w", err)
	}
	return nil
}

// mapWriteError translates driver-level failures into the error taxonomy.
func mapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("repository: %s: %w - %v", op, auctionerrors.ErrConflict, err)
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("repository: %s: %w - %v", op, auctionerrors.ErrConflict, err)
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}
