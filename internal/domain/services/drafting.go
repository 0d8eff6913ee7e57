package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// DraftingService turns a keyword into an editable title and outline via two
// sequential LLM calls. Failures are surfaced to the caller untouched; there
// is no retry at this layer.
type DraftingService struct {
	generator ports.TextGenerator
	previewer ports.OutlinePreviewer
}

// NewDraftingService creates a new drafting service instance. The previewer
// is optional; without one drafts carry no HTML preview.
func NewDraftingService(generator ports.TextGenerator, previewer ports.OutlinePreviewer) *DraftingService {
	return &DraftingService{
		generator: generator,
		previewer: previewer,
	}
}

// Draft generates a title and outline draft for the keyword
func (s *DraftingService) Draft(ctx context.Context, keyword string) (*entities.OutlineDraft, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.New("keyword cannot be empty")
	}

	title, err := s.generator.Generate(ctx, TitlePrompt(keyword))
	if err != nil {
		return nil, fmt.Errorf("generating title: %w", err)
	}

	outline, err := s.generator.Generate(ctx, OutlinePrompt(keyword))
	if err != nil {
		return nil, fmt.Errorf("generating outline: %w", err)
	}

	draft := &entities.OutlineDraft{
		Title:   strings.TrimSpace(title),
		Outline: strings.TrimSpace(outline),
	}

	if s.previewer != nil {
		preview, err := s.previewer.Preview(draft.Outline)
		if err != nil {
			// Preview is cosmetic; a failure must not sink the draft
			log.Printf("[WARN] [drafting] Outline preview failed: %v", err)
		} else {
			draft.Preview = preview
		}
	}

	return draft, nil
}
