package card

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

var views = template.Must(template.New("card").Parse(`
{{- define "error" -}}
<div>Error: {{.Message}}</div>
{{- end -}}

{{- define "card" -}}
<div class="product-card">
  <div class="image-container">
    <img src="{{.Image.Src}}" alt="{{.Image.Alt}}" class="product-image" data-placeholder="{{.Image.Placeholder}}" onerror="this.onerror=null;this.src=this.dataset.placeholder">
  </div>
  <h2 class="product-name">{{.Name}}</h2>
  <p class="product-price">{{.PriceText}}</p>
  <p class="product-description">{{.Description}}</p>
  <button type="button" class="buy-now-button" data-name="{{.Name}}" data-price="{{.PriceString}}">Buy Now</button>
</div>
{{- end -}}
`))

// WriteHTML writes the markup for an outcome: the card, or a single error
// placeholder for either validation failure.
func WriteHTML(w io.Writer, o Outcome) error {
	var err error
	if o.OK() {
		err = views.ExecuteTemplate(w, "card", o.Card)
	} else {
		err = views.ExecuteTemplate(w, "error", o)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", o.Kind, err)
	}
	return nil
}

// HTML returns the outcome's markup for embedding in a page.
func HTML(o Outcome) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, o); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
