package ports

import (
	"context"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

// ConfigLoader loads application configuration from the filesystem.
type ConfigLoader interface {
	// LoadGlobal loads the per-user global configuration, creating a
	// default file on first run.
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads the optional project-local configuration from dir;
	// returns (nil, nil) when no local file exists.
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}
