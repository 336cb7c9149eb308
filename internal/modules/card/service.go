package card

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidBuy is returned when a buy request lacks a name or price.
var ErrInvalidBuy = errors.New("name and price are required")

// Service defines card business logic.
type Service interface {
	Render(props Props) Outcome
	Buy(ctx context.Context, req BuyRequest) (*BuyRecord, error)
}

// BuyRequest carries the literal name and price of a clicked card.
type BuyRequest struct {
	Name  string `json:"name"`
	Price any    `json:"price"`
}

// Renderer validates and coerces props into an Outcome.
type Renderer struct {
	policy      Policy
	placeholder string
	recorder    Recorder
}

// NewRenderer builds a Renderer. A nil recorder falls back to logging.
func NewRenderer(policy Policy, placeholder string, recorder Recorder) *Renderer {
	if recorder == nil {
		recorder = NewLogRecorder()
	}
	return &Renderer{policy: policy, placeholder: placeholder, recorder: recorder}
}

func (r *Renderer) pricePresent(v any) bool {
	if r.policy.AllowFreePrice {
		return v != nil
	}
	return truthy(v)
}

// priceValid rejects NaN, infinite and negative prices when the policy asks.
func (r *Renderer) priceValid(f float64) bool {
	return !r.policy.RejectInvalidPrice || (finite(f) && f >= 0)
}

// Render runs the checks in order: required props, description default,
// price coercion, string types, then price validity when the policy asks.
func (r *Renderer) Render(p Props) Outcome {
	if !truthy(p.Image) || !truthy(p.Name) || !r.pricePresent(p.Price) {
		return Outcome{Kind: KindMissingProps, Message: MsgMissingProps}
	}

	description, _ := p.Description.(string)
	price := toNumber(p.Price)

	name, nameOK := p.Name.(string)
	image, imageOK := p.Image.(string)
	if !nameOK || !imageOK {
		return Outcome{Kind: KindInvalidTypes, Message: MsgInvalidTypes}
	}

	if !r.priceValid(price) {
		return Outcome{Kind: KindInvalidPrice, Message: MsgInvalidPrice}
	}

	return Outcome{
		Kind: KindCard,
		Card: &Card{
			Image:       &Image{Src: image, Alt: name, placeholder: r.placeholder},
			Name:        name,
			Price:       price,
			PriceText:   FormatPrice(price),
			Description: description,
			recorder:    r.recorder,
		},
	}
}

type service struct{ renderer *Renderer }

func NewService(renderer *Renderer) Service { return &service{renderer: renderer} }

func (s *service) Render(props Props) Outcome {
	return s.renderer.Render(props)
}

func (s *service) Buy(ctx context.Context, req BuyRequest) (*BuyRecord, error) {
	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		return nil, ErrInvalidBuy
	}
	price := toNumber(req.Price)
	if !s.renderer.priceValid(price) {
		return nil, ErrInvalidBuy
	}
	return record(ctx, s.renderer.recorder, req.Name, price)
}
