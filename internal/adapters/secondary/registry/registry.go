package registry

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// Registry holds the template catalog. It is populated at startup (built-in
// descriptors plus an optional YAML catalog file) and read-only afterwards;
// concurrent generation requests only ever read it.
type Registry struct {
	mu        sync.RWMutex
	defaultID string
	templates map[string]*entities.TemplateDescriptor
	order     []string
}

// builtinCatalog mirrors the five stock templates: one cover layout and a
// three-layout content rotation each.
func builtinCatalog() []*entities.TemplateDescriptor {
	rotation := func() []int { return []int{1, 2, 3} }
	return []*entities.TemplateDescriptor{
		{ID: "default", Name: "Default", Description: "Clean professional business style", CoverLayout: 0, ContentLayouts: rotation()},
		{ID: "blue", Name: "Blue Business", Description: "Professional business style, blue theme", CoverLayout: 0, ContentLayouts: rotation()},
		{ID: "green", Name: "Green Nature", Description: "Fresh eco style, green theme", CoverLayout: 0, ContentLayouts: rotation()},
		{ID: "red", Name: "Red Energy", Description: "High-energy style, red theme", CoverLayout: 0, ContentLayouts: rotation()},
		{ID: "dark", Name: "Dark Professional", Description: "Professional style on a dark background", CoverLayout: 0, ContentLayouts: rotation()},
	}
}

// NewRegistry creates a registry seeded with the built-in catalog
func NewRegistry(defaultID string) *Registry {
	if defaultID == "" {
		defaultID = "default"
	}

	r := &Registry{
		defaultID: defaultID,
		templates: make(map[string]*entities.TemplateDescriptor),
	}
	for _, tpl := range builtinCatalog() {
		r.register(tpl)
	}
	return r
}

// catalogFile is the YAML shape of an external template catalog
type catalogFile struct {
	Templates []*entities.TemplateDescriptor `yaml:"templates"`
}

// LoadCatalog merges descriptors from a YAML catalog file into the registry.
// Entries with a known id override the built-in descriptor; new ids extend
// the catalog. An entry without a display name gets one derived from its id.
func (r *Registry) LoadCatalog(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from configuration
	if err != nil {
		return fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	titleCaser := cases.Title(language.English)
	for i, tpl := range catalog.Templates {
		if tpl == nil {
			continue
		}
		if tpl.Name == "" {
			tpl.Name = titleCaser.String(tpl.ID)
		}
		if err := tpl.Validate(); err != nil {
			return fmt.Errorf("catalog %s entry %d: %w", path, i, err)
		}
		r.register(tpl)
	}

	return nil
}

func (r *Registry) register(tpl *entities.TemplateDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tpl.ID]; !exists {
		r.order = append(r.order, tpl.ID)
	}
	r.templates[tpl.ID] = tpl
}

// Get returns the descriptor for id, falling back to the default template
// for unknown identifiers.
func (r *Registry) Get(id string) *entities.TemplateDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tpl, ok := r.templates[id]; ok {
		return tpl
	}
	return r.templates[r.defaultID]
}

// Has reports whether id is registered, without the default fallback
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[id]
	return ok
}

// List returns all descriptors in registration order
func (r *Registry) List() []*entities.TemplateDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.TemplateDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// Ensure Registry implements ports.TemplateRegistry
var _ ports.TemplateRegistry = (*Registry)(nil)
