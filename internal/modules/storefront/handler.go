package storefront

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/printa-productcard/internal/modules/card"
	"github.com/georgemunganga/printa-productcard/internal/obs"
)

// BuyURL is where the page script reports "Buy Now" clicks.
const BuyURL = "/api/v1/card/buy"

var page = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <div class="App">
    <header class="App-header">
      {{.Card}}
    </header>
  </div>
  <script>
    document.addEventListener("click", function (e) {
      var btn = e.target.closest(".buy-now-button");
      if (!btn) return;
      var name = btn.dataset.name, price = btn.dataset.price;
      console.log("Product: " + name + ", Price: " + price);
      fetch({{.BuyURL}}, {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({name: name, price: price})
      });
    });
  </script>
</body>
</html>
`))

type pageData struct {
	Title  string
	Card   template.HTML
	BuyURL string
}

// Handler serves the page shell with its single product card.
type Handler struct {
	service card.Service
	props   card.Props
}

func NewHandler(service card.Service, props card.Props) *Handler {
	return &Handler{service: service, props: props}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	o := h.service.Render(h.props)
	markup, err := card.HTML(o)
	if err != nil {
		obs.Logger.Error("page_render_error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	title := "Product"
	if o.OK() {
		title = o.Card.Name
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: title, Card: markup, BuyURL: BuyURL}); err != nil {
		obs.Logger.Error("page_render_error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
