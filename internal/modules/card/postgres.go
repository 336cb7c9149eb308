package card

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRecorder struct{ db *sql.DB }

func NewPostgresRecorder(db *sql.DB) Recorder { return &postgresRecorder{db: db} }

// EnsureSchema creates the buy_clicks table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS buy_clicks (
		  id           UUID PRIMARY KEY,
		  product_name TEXT NOT NULL,
		  price        DOUBLE PRECISION,
		  price_text   TEXT NOT NULL,
		  clicked_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create buy_clicks: %w", err)
	}
	return nil
}

func (r *postgresRecorder) Record(ctx context.Context, rec *BuyRecord) error {
	price := sql.NullFloat64{Float64: rec.Price, Valid: finite(rec.Price)}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO buy_clicks (id, product_name, price, price_text, clicked_at)
		VALUES ($1,$2,$3,$4,$5)`,
		rec.ID, rec.Name, price, rec.PriceLiteral, rec.ClickedAt)
	return err
}

// CountClicks returns how many clicks were recorded for a product name.
func CountClicks(ctx context.Context, db *sql.DB, name string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM buy_clicks WHERE product_name=$1`, name).Scan(&n)
	return n, err
}
