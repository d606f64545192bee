package mockup

import (
	"errors"
	"fmt"
)

var (
	ErrNoTemplates    = errors.New("select at least one template")
	ErrNoArtwork      = errors.New("upload at least one artwork file")
	ErrMissingDetails = errors.New("enter client name and live date")
)

// GenerationError is the single error surfaced for a failed mockup. Err
// keeps the underlying cause for errors.Is and errors.As.
type GenerationError struct {
	Template string
	Artwork  string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Artwork == "" {
		return fmt.Sprintf("generating mockup for %s: %v", e.Template, e.Err)
	}
	return fmt.Sprintf("generating mockup for %s with %s: %v", e.Template, e.Artwork, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
