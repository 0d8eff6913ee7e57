package entities

import (
	"errors"
	"time"
)

// SlideSpec is one content slide produced by the outline parser: a section
// title, its bullet lines, and the layout index assigned from the template's
// rotation. Specs are transient; they exist only between parsing and
// rendering and are never persisted.
type SlideSpec struct {
	// Title is the section title, used verbatim
	Title string `json:"title"`

	// Bullets are the section's bullet lines with markers stripped
	Bullets []string `json:"bullets"`

	// Layout is the theme layout index assigned by the rotation
	Layout int `json:"layout"`
}

// Validate ensures the slide can be rendered. Emission policy already
// guarantees both fields, so a violation indicates a programming error.
func (s *SlideSpec) Validate() error {
	if s.Title == "" {
		return errors.New("slide title cannot be empty")
	}

	if len(s.Bullets) == 0 {
		return errors.New("slide must have at least one bullet")
	}

	return nil
}

// OutlineDraft is the LLM's proposal for a keyword: a deck title and an
// editable outline, plus a sanitized HTML preview of the outline.
type OutlineDraft struct {
	Title   string `json:"title"`
	Outline string `json:"outline"`
	Preview string `json:"preview,omitempty"`
}

// Artifact describes a generated presentation file available for download.
type Artifact struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
