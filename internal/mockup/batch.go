package mockup

import (
	"path/filepath"

	"github.com/youruser/mockupapp/internal/templates"
	"github.com/youruser/mockupapp/internal/util"
)

// Job is every selected template crossed with every uploaded artwork.
type Job struct {
	Templates []string
	Artworks  []string
	Client    string
	LiveDate  string
	OutputDir string
	QRText    string
}

// Output is a generated mockup.
type Output struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Result collects what a job produced. A failed pair is recorded in Errors
// and the job moves on.
type Result struct {
	Outputs []Output
	Errors  []error
}

// Run validates job and generates each template x artwork pair in turn.
func (g *Generator) Run(job Job) (Result, error) {
	switch {
	case len(job.Templates) == 0:
		return Result{}, ErrNoTemplates
	case len(job.Artworks) == 0:
		return Result{}, ErrNoArtwork
	case job.Client == "" || job.LiveDate == "":
		return Result{}, ErrMissingDetails
	}
	if err := util.EnsureDir(job.OutputDir); err != nil {
		return Result{}, err
	}

	var res Result
	for _, t := range job.Templates {
		name := templates.FileName(t)
		if _, err := g.Catalog.Lookup(name); err != nil {
			res.Errors = append(res.Errors, &GenerationError{Template: name, Err: err})
			g.Logger.Warn("Skipping template", "template", name, "error", err)
			continue
		}

		for _, artwork := range job.Artworks {
			campaign := CampaignFromArtwork(artwork)
			path, err := util.UniquePath(filepath.Join(job.OutputDir, Filename(name, job.Client, campaign, job.LiveDate)))
			if err != nil {
				res.Errors = append(res.Errors, &GenerationError{Template: name, Artwork: filepath.Base(artwork), Err: err})
				continue
			}

			err = g.Generate(Request{Template: name, ArtworkPath: artwork, OutputPath: path, QRText: job.QRText})
			if err != nil {
				g.Logger.Error("Mockup failed", "template", name, "artwork", artwork, "error", err)
				res.Errors = append(res.Errors, err)
				continue
			}
			res.Outputs = append(res.Outputs, Output{Filename: filepath.Base(path), Path: path})
		}
	}
	return res, nil
}
