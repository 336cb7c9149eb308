package card

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func renderDoc(t *testing.T, o Outcome) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, o); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestWriteHTMLCard(t *testing.T) {
	r, _ := newTestRenderer(DefaultPolicy())
	doc := renderDoc(t, r.Render(validProps()))

	img := doc.Find(".product-card .image-container img.product-image")
	if img.Length() != 1 {
		t.Fatalf("expected one image, got %d", img.Length())
	}
	if src, _ := img.Attr("src"); src != "https://example.com/speaker.webp" {
		t.Fatalf("img src = %q", src)
	}
	if alt, _ := img.Attr("alt"); alt != "Retro Speaker" {
		t.Fatalf("img alt = %q", alt)
	}
	if ph, _ := img.Attr("data-placeholder"); ph != placeholder {
		t.Fatalf("img placeholder = %q", ph)
	}
	if onerr, _ := img.Attr("onerror"); !strings.Contains(onerr, "this.onerror=null") {
		t.Fatalf("onerror must swap once, got %q", onerr)
	}
	if got := doc.Find("h2.product-name").Text(); got != "Retro Speaker" {
		t.Fatalf("heading = %q", got)
	}
	if got := doc.Find("p.product-price").Text(); got != "$19.99" {
		t.Fatalf("price = %q", got)
	}
	if got := doc.Find("p.product-description").Text(); got != "Warm sound." {
		t.Fatalf("description = %q", got)
	}
	btn := doc.Find("button.buy-now-button")
	if strings.TrimSpace(btn.Text()) != "Buy Now" {
		t.Fatalf("button = %q", btn.Text())
	}
	if name, _ := btn.Attr("data-name"); name != "Retro Speaker" {
		t.Fatalf("button data-name = %q", name)
	}
	if price, _ := btn.Attr("data-price"); price != "19.99" {
		t.Fatalf("button data-price = %q", price)
	}
}

func TestWriteHTMLEscapesText(t *testing.T) {
	r, _ := newTestRenderer(DefaultPolicy())
	p := validProps()
	p.Name = `<script>alert("x")</script>`
	p.Description = "Bass & treble"
	var buf bytes.Buffer
	if err := WriteHTML(&buf, r.Render(p)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("name must be escaped: %s", buf.String())
	}
	doc, _ := goquery.NewDocumentFromReader(&buf)
	if got := doc.Find("h2.product-name").Text(); got != `<script>alert("x")</script>` {
		t.Fatalf("heading text = %q", got)
	}
	if got := doc.Find("p.product-description").Text(); got != "Bass & treble" {
		t.Fatalf("description text = %q", got)
	}
}

func TestWriteHTMLErrors(t *testing.T) {
	r, _ := newTestRenderer(DefaultPolicy())
	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{"missing", Props{Name: "x", Price: 1}, "Error: Required props not provided"},
		{"types", Props{Image: 1, Name: "x", Price: 1}, "Error: Incorrect data types for props"},
		{"price", Props{Image: "i", Name: "x", Price: "abc"}, "Error: Price is not a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := renderDoc(t, r.Render(tt.props))
			if doc.Find(".product-card").Length() != 0 {
				t.Fatalf("no card markup expected on failure")
			}
			div := doc.Find("body > div")
			if div.Length() != 1 {
				t.Fatalf("expected a single placeholder div, got %d", div.Length())
			}
			if _, hasClass := div.Attr("class"); hasClass {
				t.Fatalf("placeholder div should be bare")
			}
			if got := strings.TrimSpace(doc.Find("body").Text()); got != tt.want {
				t.Fatalf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTMLAfterImageFailure(t *testing.T) {
	r, _ := newTestRenderer(DefaultPolicy())
	o := r.Render(validProps())
	o.Card.Image.Fail()
	markup, err := HTML(o)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	if src, _ := doc.Find("img.product-image").Attr("src"); src != placeholder {
		t.Fatalf("img src = %q, want placeholder", src)
	}
	if got := doc.Find("p.product-price").Text(); got != "$19.99" {
		t.Fatalf("price changed to %q", got)
	}
}
