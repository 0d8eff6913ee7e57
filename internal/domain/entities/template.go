package entities

import (
	"errors"
	"fmt"
)

// TemplateDescriptor binds a template identifier to its visual theme and the
// layout indices that are valid inside that theme. Layout indices are checked
// against the actual theme lazily, when a generation request arrives, not at
// registration.
type TemplateDescriptor struct {
	// ID is the identifier clients send in generation requests
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable display name
	Name string `json:"name" yaml:"name"`

	// Description summarizes the visual style
	Description string `json:"description" yaml:"description"`

	// Theme names the renderer theme backing this template. Empty means
	// the theme shares the descriptor's ID.
	Theme string `json:"-" yaml:"theme"`

	// CoverLayout is the layout index used for the title slide
	CoverLayout int `json:"cover_layout" yaml:"cover_layout"`

	// ContentLayouts is the ordered rotation of layout indices for content
	// slides; the Nth content slide uses ContentLayouts[(N-1) mod len].
	ContentLayouts []int `json:"content_layouts" yaml:"content_layouts"`
}

// Validate ensures the descriptor is structurally sound. It does not check
// indices against the theme; that is the renderer's boundary check.
func (t *TemplateDescriptor) Validate() error {
	if t.ID == "" {
		return errors.New("template id cannot be empty")
	}

	if t.CoverLayout < 0 {
		return fmt.Errorf("cover layout index must be non-negative, got %d", t.CoverLayout)
	}

	if len(t.ContentLayouts) == 0 {
		return ErrNoContentLayouts
	}

	for _, idx := range t.ContentLayouts {
		if idx < 0 {
			return fmt.Errorf("content layout index must be non-negative, got %d", idx)
		}
	}

	return nil
}

// ThemeName returns the renderer theme key for this descriptor
func (t *TemplateDescriptor) ThemeName() string {
	if t.Theme != "" {
		return t.Theme
	}
	return t.ID
}
