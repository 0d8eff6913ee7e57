package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// GenerationService orchestrates one generation request: template lookup,
// outline parsing, rendering, and storing the artifact under a timestamped
// name. Each invocation is independent; no state is shared across requests.
type GenerationService struct {
	registry ports.TemplateRegistry
	renderer ports.DeckRenderer
	store    ports.ArtifactStore
	now      func() time.Time
}

// NewGenerationService creates a new generation service instance
func NewGenerationService(registry ports.TemplateRegistry, renderer ports.DeckRenderer, store ports.ArtifactStore) *GenerationService {
	return &GenerationService{
		registry: registry,
		renderer: renderer,
		store:    store,
		now:      time.Now,
	}
}

// Generate builds a presentation from an edited title and outline and stores
// it for download. Unknown template ids fall back to the default template;
// the HTTP layer rejects them earlier, so the fallback only covers callers
// that skip that check on purpose.
//
// Nothing is written unless rendering succeeds in full, so a failed request
// never leaves a partial artifact behind.
func (s *GenerationService) Generate(ctx context.Context, title, outline, templateID string) (*entities.Artifact, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}

	tpl := s.registry.Get(templateID)
	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.ID, err)
	}

	// Boundary check before any slide is created
	count := s.renderer.LayoutCount(tpl)
	if tpl.CoverLayout >= count {
		return nil, &entities.LayoutRangeError{Index: tpl.CoverLayout, Count: count}
	}
	for _, idx := range tpl.ContentLayouts {
		if idx >= count {
			return nil, &entities.LayoutRangeError{Index: idx, Count: count}
		}
	}

	slides, stats, err := AssignSlides(outline, tpl.ContentLayouts)
	if err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	if stats.DroppedSections > 0 || stats.OrphanBullets > 0 {
		log.Printf("[WARN] [generator] Outline lost content during parsing: %d bulletless sections, %d orphan bullets",
			stats.DroppedSections, stats.OrphanBullets)
	}

	data, err := s.renderer.Render(ctx, tpl, title, slides)
	if err != nil {
		return nil, fmt.Errorf("rendering deck: %w", err)
	}

	createdAt := s.now()
	filename := fmt.Sprintf("PPT_%s.pptx", createdAt.Format("20060102-150405"))

	if _, err := s.store.Save(ctx, filename, data); err != nil {
		return nil, fmt.Errorf("storing artifact: %w", err)
	}

	return &entities.Artifact{
		Filename:  filename,
		URL:       "/download/" + filename,
		Size:      int64(len(data)),
		CreatedAt: createdAt,
	}, nil
}
