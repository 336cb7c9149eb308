package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/georgemunganga/printa-productcard/internal/obs"
)

// Recorder stores diagnostic records of "Buy Now" clicks.
type Recorder interface {
	Record(ctx context.Context, rec *BuyRecord) error
}

func record(ctx context.Context, r Recorder, name string, price float64) (*BuyRecord, error) {
	rec := newBuyRecord(name, price)
	if err := r.Record(ctx, rec); err != nil {
		return nil, fmt.Errorf("record buy: %w", err)
	}
	return rec, nil
}

type logRecorder struct{ logger func() *slog.Logger }

// NewLogRecorder writes each click to the global structured logger.
func NewLogRecorder() Recorder {
	return &logRecorder{logger: func() *slog.Logger { return obs.Logger }}
}

// NewLogRecorderTo writes each click to the given logger.
func NewLogRecorderTo(l *slog.Logger) Recorder {
	return &logRecorder{logger: func() *slog.Logger { return l }}
}

func (r *logRecorder) Record(ctx context.Context, rec *BuyRecord) error {
	r.logger().InfoContext(ctx, "buy_now_clicked",
		"id", rec.ID.String(),
		"product", rec.Name,
		"price", rec.PriceLiteral,
		"detail", fmt.Sprintf("Product: %s, Price: %s", rec.Name, rec.PriceLiteral),
	)
	return nil
}

// MultiRecorder fans a record out to every recorder and joins their errors.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(ctx context.Context, rec *BuyRecord) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
