package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/youruser/mockupapp/internal/bundle"
	"github.com/youruser/mockupapp/internal/mockup"
	"github.com/youruser/mockupapp/internal/templates"
)

type handler struct {
	gen *mockup.Generator
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type templateView struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Panels      []string  `json:"panels"`
	SplitRatios []float64 `json:"split_ratios,omitempty"`
}

// listTemplates returns the catalog, optionally narrowed by the "q" query.
func (h *handler) listTemplates(c *gin.Context) {
	names := templates.Filter(h.gen.Catalog.Names(), c.Query("q"))
	out := make([]templateView, 0, len(names))
	for _, n := range names {
		v := templateView{Name: n, DisplayName: templates.DisplayName(n)}
		if s, err := h.gen.Catalog.Lookup(n); err == nil {
			for _, p := range s.Panels {
				v.Panels = append(v.Panels, p.Key)
			}
			v.SplitRatios = s.SplitRatios
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "templates": out})
}

// createMockups takes a multipart form with repeated "template" and
// "artwork" fields plus "client", "live_date" and optional "qr_text", and
// answers with a zip of every mockup that could be generated.
func (h *handler) createMockups(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// each request works in its own directory
	work, err := os.MkdirTemp("", "mockups-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer os.RemoveAll(work)

	artworks, err := saveUploads(c, form.File["artwork"], filepath.Join(work, "uploaded_artwork"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	job := mockup.Job{
		Templates: form.Value["template"],
		Artworks:  artworks,
		Client:    c.PostForm("client"),
		LiveDate:  c.PostForm("live_date"),
		OutputDir: filepath.Join(work, "generated_mockups"),
		QRText:    c.PostForm("qr_text"),
	}
	res, err := h.gen.Run(job)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mockup.ErrNoTemplates) || errors.Is(err, mockup.ErrNoArtwork) || errors.Is(err, mockup.ErrMissingDetails) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	failures := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		failures = append(failures, e.Error())
	}
	if len(res.Outputs) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no mockups generated", "failures": failures})
		return
	}

	b := bundle.Bundle{Name: bundle.ArchiveName(job.Client, job.LiveDate)}
	for _, o := range res.Outputs {
		b.Files = append(b.Files, bundle.File{Name: o.Filename, Path: o.Path})
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", b.Name))
	c.Header("X-Mockup-Count", strconv.Itoa(len(res.Outputs)))
	c.Header("X-Mockup-Failures", strconv.Itoa(len(failures)))
	c.Header("Content-Type", "application/zip")
	c.Status(http.StatusOK)
	if err := b.WriteZip(c.Writer); err != nil {
		h.gen.Logger.Error("Writing zip failed", "bundle", b.Name, "error", err)
		c.Error(err)
	}
}

func saveUploads(c *gin.Context, files []*multipart.FileHeader, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path := filepath.Join(dir, filepath.Base(fh.Filename))
		if err := c.SaveUploadedFile(fh, path); err != nil {
			return nil, fmt.Errorf("saving %s: %w", fh.Filename, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
