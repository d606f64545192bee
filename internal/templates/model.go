package templates

import (
	"strings"

	"github.com/youruser/mockupapp/internal/geometry"
	imagepkg "github.com/youruser/mockupapp/internal/image"
)

// Panel keys in canonical left-to-right order.
const (
	LHS = "LHS"
	MID = "MID"
	RHS = "RHS"
)

var panelKeys = []string{LHS, MID, RHS}

// Spec places artwork on one billboard template image.
type Spec struct {
	Name        string           `json:"name"`
	Panels      []imagepkg.Panel `json:"panels"`
	SplitRatios []float64        `json:"split_ratios,omitempty"`
}

// MultiPanel reports whether the artwork is split across panels. Declaring
// split_ratios at all selects the split layout, even when the list is empty.
func (s Spec) MultiPanel() bool {
	return s.SplitRatios != nil && len(s.Panels) >= 2
}

// Quad returns the destination quad for a panel key.
func (s Spec) Quad(key string) (geometry.Quad, bool) {
	for _, p := range s.Panels {
		if p.Key == key {
			return p.Quad, true
		}
	}
	return nil, false
}

// DisplayName strips the image extension from a template file name.
func DisplayName(name string) string {
	return strings.TrimSuffix(name, ".png")
}

// FileName is the inverse of DisplayName.
func FileName(display string) string {
	if strings.HasSuffix(display, ".png") {
		return display
	}
	return display + ".png"
}
