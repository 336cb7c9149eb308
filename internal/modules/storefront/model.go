package storefront

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/georgemunganga/printa-productcard/internal/modules/card"
)

//go:embed listing.yaml
var listingYAML []byte

// Listing returns the product attributes baked into the binary.
func Listing() (card.Props, error) {
	return decodeListing(listingYAML)
}

func decodeListing(data []byte) (card.Props, error) {
	var p card.Props
	if err := yaml.Unmarshal(data, &p); err != nil {
		return card.Props{}, fmt.Errorf("decode listing: %w", err)
	}
	return p, nil
}
