package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpserver "github.com/promptdeck/promptdeck/internal/adapters/primary/http"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/config"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/llm"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/preview"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/registry"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/renderer"
	"github.com/promptdeck/promptdeck/internal/adapters/secondary/storage"
	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/services"
)

var (
	// Serve command flags
	servePort      int
	serveHost      string
	serveAPIKey    string
	serveModel     string
	serveOutputDir string
	serveCatalog   string
	serveAssetsDir string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the deck generation API server",
	Long: `Start the HTTP server exposing the generation API.

Endpoints:
  GET  /api/templates        list the template catalog
  POST /api/outline          draft a title and outline from a keyword
  POST /api/generate         render an edited outline into a .pptx deck
  GET  /download/{filename}  download a generated deck

Example:
  promptdeck serve
  promptdeck serve --port 9000 --api-key sk-...`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Add command flags - defaults come from config loading
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "LLM API key (overrides config)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "LLM model name (overrides config)")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "Directory for generated decks (overrides config)")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Extra template catalog YAML file (overrides config)")
	serveCmd.Flags().StringVar(&serveAssetsDir, "assets-dir", "", "Directory with the frontend index.html (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	finalConfig, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	server, err := buildServer(finalConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := server.Start(ctx, finalConfig.Server.Port, finalConfig.Server.Host); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	fmt.Printf("promptdeck listening on http://%s:%d\n", finalConfig.Server.Host, finalConfig.Server.Port)
	if finalConfig.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: no API key configured; /api/outline and /api/generate will fail until one is set")
	}

	// Block until the root context is cancelled by a signal
	<-ctx.Done()

	shutdownCtx := context.Background()
	return server.Stop(shutdownCtx)
}

// loadServeConfig builds the effective configuration with the usual
// precedence: CLI flags > local config > global config > defaults.
func loadServeConfig(cmd *cobra.Command) (*entities.Config, error) {
	ctx := cmd.Context()
	loader := config.NewTOMLLoader()
	merger := config.NewConfigMerger()

	globalConfig, err := loader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	localConfig, err := loader.LoadLocal(ctx, cwd)
	if err != nil {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	finalConfig := merger.Merge(config.GetDefaultConfig(), globalConfig, localConfig)

	verbose, _ := cmd.Flags().GetBool("verbose")
	finalConfig = merger.ApplyFlags(finalConfig, map[string]interface{}{
		"port":       servePort,
		"host":       serveHost,
		"api-key":    serveAPIKey,
		"model":      serveModel,
		"output-dir": serveOutputDir,
		"catalog":    serveCatalog,
		"verbose":    verbose,
	})
	if serveAssetsDir != "" {
		finalConfig.Generator.AssetsDir = serveAssetsDir
	}

	if err := finalConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return finalConfig, nil
}

// buildServer wires the adapters and services into an HTTP server
func buildServer(cfg *entities.Config) (*httpserver.Server, error) {
	templates := registry.NewRegistry(cfg.Generator.GetDefaultTemplate())
	if cfg.Generator.Catalog != "" {
		if err := templates.LoadCatalog(cfg.Generator.Catalog); err != nil {
			return nil, fmt.Errorf("loading template catalog: %w", err)
		}
	}

	store, err := storage.NewFileStore(cfg.Generator.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output store: %w", err)
	}

	generator := llm.NewClient(cfg.LLM)
	drafting := services.NewDraftingService(generator, preview.NewMarkdownPreviewer())
	generation := services.NewGenerationService(templates, renderer.NewGoPPTRenderer(), store)

	server := httpserver.NewServerWithLogging(drafting, generation, templates, store, &cfg.Server, &cfg.Logging)
	if cfg.Generator.AssetsDir != "" {
		server.SetAssetsDir(cfg.Generator.AssetsDir)
	}

	return server, nil
}
