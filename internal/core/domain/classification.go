package domain

import (
	"fmt"
	"strings"
)

// Classification is a curator-assigned top-level category used to filter
// the remote catalog.
type Classification string

// Classifications offered by the dashboard selector.
const (
	ClassificationCoins     Classification = "Coins"
	ClassificationPaintings Classification = "Paintings"
	ClassificationDrawings  Classification = "Drawings"
	ClassificationJewelry   Classification = "Jewelry"
	ClassificationSculpture Classification = "Sculpture"
)

// Classifications returns the selectable classifications in display order.
func Classifications() []Classification {
	return []Classification{
		ClassificationCoins,
		ClassificationPaintings,
		ClassificationDrawings,
		ClassificationJewelry,
		ClassificationSculpture,
	}
}

// String returns the string representation.
func (c Classification) String() string {
	return string(c)
}

// ParseClassification resolves user input case-insensitively.
func ParseClassification(s string) (Classification, error) {
	for _, known := range Classifications() {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: classification %q", ErrUnsupportedType, s)
}
