package card

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Props is the raw attribute set handed to the card. Values keep whatever
// dynamic type they were decoded with (JSON or YAML); absent and null are
// both nil.
type Props struct {
	Image       any `json:"image" yaml:"image"`
	Name        any `json:"name" yaml:"name"`
	Price       any `json:"price" yaml:"price"`
	Description any `json:"description" yaml:"description"`
}

// Kind tells which variant a render produced.
type Kind int

const (
	KindCard Kind = iota
	KindMissingProps
	KindInvalidTypes
	KindInvalidPrice
)

const (
	MsgMissingProps = "Required props not provided"
	MsgInvalidTypes = "Incorrect data types for props"
	MsgInvalidPrice = "Price is not a valid number"
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindMissingProps:
		return "missing_props"
	case KindInvalidTypes:
		return "invalid_types"
	case KindInvalidPrice:
		return "invalid_price"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind appear as its name in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Outcome is the result of one render pass. Card is set only for KindCard.
type Outcome struct {
	Kind    Kind
	Message string
	Card    *Card
}

// OK reports whether the outcome is a renderable card.
func (o Outcome) OK() bool { return o.Kind == KindCard && o.Card != nil }

// Image is the card's image element. Its source can be swapped for the
// placeholder exactly once.
type Image struct {
	Src         string
	Alt         string
	placeholder string
	failed      bool
}

// Placeholder returns the URL the image falls back to.
func (i *Image) Placeholder() string { return i.placeholder }

// MarshalJSON includes the fallback URL alongside src and alt.
func (i *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Src         string `json:"src"`
		Alt         string `json:"alt"`
		Placeholder string `json:"placeholder"`
	}{i.Src, i.Alt, i.placeholder})
}

// Failed reports whether the fallback has already been applied.
func (i *Image) Failed() bool { return i.failed }

// Fail handles an image load failure. It returns false when the fallback
// was already applied, leaving Src untouched.
func (i *Image) Fail() bool {
	if i.failed {
		return false
	}
	i.failed = true
	i.Src = i.placeholder
	return true
}

// Card is a validated, coerced product listing ready for display.
type Card struct {
	Image       *Image
	Name        string
	Price       float64
	PriceText   string
	Description string

	recorder Recorder
}

// PriceString is the price as a JavaScript number would print it.
func (c *Card) PriceString() string { return jsNumberString(c.Price) }

// Buy is the "Buy Now" action. It emits one diagnostic record and changes
// nothing on the card.
func (c *Card) Buy(ctx context.Context) (*BuyRecord, error) {
	return record(ctx, c.recorder, c.Name, c.Price)
}

// MarshalJSON writes non-finite prices as null.
func (c *Card) MarshalJSON() ([]byte, error) {
	var price *float64
	if finite(c.Price) {
		p := c.Price
		price = &p
	}
	return json.Marshal(struct {
		Image       *Image   `json:"image"`
		Name        string   `json:"name"`
		Price       *float64 `json:"price"`
		PriceText   string   `json:"price_text"`
		Description string   `json:"description"`
	}{c.Image, c.Name, price, c.PriceText, c.Description})
}

// BuyRecord is the diagnostic record of one "Buy Now" click.
type BuyRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"-"`
	PriceLiteral string    `json:"price"`
	ClickedAt    time.Time `json:"clicked_at"`
}

func newBuyRecord(name string, price float64) *BuyRecord {
	return &BuyRecord{
		ID:           uuid.New(),
		Name:         name,
		Price:        price,
		PriceLiteral: jsNumberString(price),
		ClickedAt:    time.Now().UTC(),
	}
}

// Policy controls how strictly the price prop is checked.
type Policy struct {
	// AllowFreePrice checks price for presence instead of truthiness, so 0 is accepted.
	AllowFreePrice bool
	// RejectInvalidPrice turns a NaN, infinite or negative price into KindInvalidPrice.
	RejectInvalidPrice bool
}

// DefaultPolicy keeps truthiness checks and rejects unparseable prices.
func DefaultPolicy() Policy {
	return Policy{RejectInvalidPrice: true}
}
