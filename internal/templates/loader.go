package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/youruser/mockupapp/internal/geometry"
	imagepkg "github.com/youruser/mockupapp/internal/image"
	"gopkg.in/yaml.v3"
)

// entry mirrors one template in the coordinates file:
//
//	"Site A.png":
//	  LHS: [[312, 118], [1407, 201], [1398, 612], [305, 655]]
//	  split_ratios: [0.5, 0.5]
type entry struct {
	LHS         [][]float64 `yaml:"LHS"`
	MID         [][]float64 `yaml:"MID"`
	RHS         [][]float64 `yaml:"RHS"`
	SplitRatios []float64   `yaml:"split_ratios"`
}

func (e entry) quads() map[string][][]float64 {
	return map[string][][]float64{LHS: e.LHS, MID: e.MID, RHS: e.RHS}
}

// Catalog is the immutable template name -> Spec table.
type Catalog struct {
	specs map[string]Spec
}

// LoadCatalog reads the coordinates file at path.
func LoadCatalog(path string) (*Catalog, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	c, err := ParseCatalog(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a coordinates table from r.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string]entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	specs := make(map[string]Spec, len(raw))
	for name, e := range raw {
		s := Spec{Name: name, SplitRatios: e.SplitRatios}
		quads := e.quads()
		for _, key := range panelKeys {
			pts := quads[key]
			if pts == nil {
				continue
			}
			q, err := toQuad(pts)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", name, key, err)
			}
			s.Panels = append(s.Panels, imagepkg.Panel{Key: key, Quad: q})
		}
		specs[name] = s
	}
	return &Catalog{specs: specs}, nil
}

func toQuad(pts [][]float64) (geometry.Quad, error) {
	q := make(geometry.Quad, 0, len(pts))
	for i, p := range pts {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d values, want x and y", i, len(p))
		}
		q = append(q, geometry.Point{X: p[0], Y: p[1]})
	}
	return q, nil
}

// Lookup returns the placement for a template. Unknown templates and
// single-panel templates without an LHS quad are configuration errors.
func (c *Catalog) Lookup(name string) (Spec, error) {
	s, ok := c.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: coordinates not found for %s", imagepkg.ErrPanelConfiguration, name)
	}
	if !s.MultiPanel() {
		if _, ok := s.Quad(LHS); !ok {
			return Spec{}, fmt.Errorf("%w: %s has no LHS coordinates", imagepkg.ErrPanelConfiguration, name)
		}
	}
	return s, nil
}

// Names lists every template, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for n := range c.specs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len is the number of templates.
func (c *Catalog) Len() int {
	return len(c.specs)
}
