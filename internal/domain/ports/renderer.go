package ports

import (
	"context"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

// DeckRenderer turns a cover title plus an ordered slide sequence into a
// binary presentation artifact using the descriptor's theme.
type DeckRenderer interface {
	// Render validates every referenced layout index against the theme
	// before creating any slide, then builds the cover slide followed by
	// the content slides and serializes the deck.
	Render(ctx context.Context, tpl *entities.TemplateDescriptor, title string, slides []entities.SlideSpec) ([]byte, error)

	// LayoutCount returns the number of layouts the descriptor's theme
	// provides, for boundary checks ahead of rendering.
	LayoutCount(tpl *entities.TemplateDescriptor) int
}
