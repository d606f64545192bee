// Package mockup turns a template, a piece of artwork and the template's
// coordinates into a finished JPEG mockup.
package mockup

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	imagepkg "github.com/youruser/mockupapp/internal/image"
	"github.com/youruser/mockupapp/internal/templates"
)

type Generator struct {
	Catalog     *templates.Catalog
	TemplateDir string
	Quality     int
	Background  color.Color
	Logger      *slog.Logger
}

func New(catalog *templates.Catalog, templateDir string) *Generator {
	return &Generator{
		Catalog:     catalog,
		TemplateDir: templateDir,
		Quality:     imagepkg.DefaultJPEGQuality,
		Background:  color.Black,
		Logger:      slog.Default(),
	}
}

// Request is one template and artwork pair.
type Request struct {
	// Template is the catalog name, e.g. "Albert Road.png".
	Template    string
	ArtworkPath string
	OutputPath  string
	// QRText, when set, is stamped as a QR code onto the mockup.
	QRText string
}

// Generate writes the mockup for req to req.OutputPath. Any failure comes
// back as a *GenerationError and leaves nothing at the output path.
func (g *Generator) Generate(req Request) error {
	if err := g.generate(req); err != nil {
		return &GenerationError{Template: req.Template, Artwork: filepath.Base(req.ArtworkPath), Err: err}
	}
	g.Logger.Info("Mockup generated", "template", req.Template, "artwork", req.ArtworkPath, "output", req.OutputPath)
	return nil
}

func (g *Generator) generate(req Request) error {
	spec, err := g.Catalog.Lookup(req.Template)
	if err != nil {
		return err
	}
	template, err := imagepkg.Open(filepath.Join(g.TemplateDir, req.Template))
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	artwork, err := imagepkg.Open(req.ArtworkPath)
	if err != nil {
		return fmt.Errorf("artwork: %w", err)
	}

	out, err := Render(spec, template, artwork)
	if err != nil {
		return err
	}
	if req.QRText != "" {
		if out, err = imagepkg.StampQR(out, req.QRText); err != nil {
			return err
		}
	}
	return imagepkg.SaveJPEG(req.OutputPath, imagepkg.Flatten(out, g.Background), g.Quality)
}

// Render composites artwork into template using the layout in spec. The
// result still carries alpha.
func Render(spec templates.Spec, template, artwork *image.NRGBA) (*image.NRGBA, error) {
	if spec.MultiPanel() {
		return imagepkg.ComposeMulti(template, artwork, spec.Panels, spec.SplitRatios)
	}
	q, ok := spec.Quad(templates.LHS)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no LHS coordinates", imagepkg.ErrPanelConfiguration, spec.Name)
	}
	return imagepkg.ComposeSingle(template, artwork, q)
}
