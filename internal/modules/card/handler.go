package card

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes card HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/card", func(r chi.Router) {
		r.Post("/render", h.render)
		r.Post("/buy", h.buy)
	})
}

type renderResponse struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`
	Card    *Card  `json:"card,omitempty"`
	HTML    string `json:"html"`
}

// render always answers 200 for a decodable body; the variant is the result.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	var props Props
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o := h.service.Render(props)
	markup, err := HTML(o)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, renderResponse{
		Kind:    o.Kind,
		Message: o.Message,
		Card:    o.Card,
		HTML:    string(markup),
	})
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	var req BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rec, err := h.service.Buy(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidBuy) {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusAccepted, rec)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
