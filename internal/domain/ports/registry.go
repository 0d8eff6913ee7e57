package ports

import "github.com/promptdeck/promptdeck/internal/domain/entities"

// TemplateRegistry resolves template identifiers to descriptors.
type TemplateRegistry interface {
	// Get returns the descriptor for id, falling back to the default
	// template for unknown identifiers rather than failing.
	Get(id string) *entities.TemplateDescriptor

	// Has reports whether id is actually registered (no fallback).
	Has(id string) bool

	// List returns all registered descriptors in a stable order.
	List() []*entities.TemplateDescriptor
}
