package config

import (
	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

// ConfigMerger combines configuration layers: defaults, global file, local
// file, then CLI flags, with later layers taking precedence.
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if port, ok := flags["port"].(int); ok && port > 0 {
		result.Server.Port = port
	}

	if host, ok := flags["host"].(string); ok && host != "" {
		result.Server.Host = host
	}

	if apiKey, ok := flags["api-key"].(string); ok && apiKey != "" {
		result.LLM.APIKey = apiKey
	}

	if model, ok := flags["model"].(string); ok && model != "" {
		result.LLM.Model = model
	}

	if outputDir, ok := flags["output-dir"].(string); ok && outputDir != "" {
		result.Generator.OutputDir = outputDir
	}

	if catalog, ok := flags["catalog"].(string); ok && catalog != "" {
		result.Generator.Catalog = catalog
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
		result.Logging.Level = string(entities.LogLevelDebug)
	}

	return result
}

// mergeInto overlays non-zero fields of overlay onto base
func (m *ConfigMerger) mergeInto(base, overlay *entities.Config) {
	if overlay.Server.Host != "" {
		base.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		base.Server.Port = overlay.Server.Port
	}
	if overlay.Server.ReadTimeout != 0 {
		base.Server.ReadTimeout = overlay.Server.ReadTimeout
	}
	if overlay.Server.WriteTimeout != 0 {
		base.Server.WriteTimeout = overlay.Server.WriteTimeout
	}
	if overlay.Server.ShutdownTimeout != 0 {
		base.Server.ShutdownTimeout = overlay.Server.ShutdownTimeout
	}
	if len(overlay.Server.CORSOrigins) > 0 {
		base.Server.CORSOrigins = append([]string(nil), overlay.Server.CORSOrigins...)
	}

	if overlay.LLM.BaseURL != "" {
		base.LLM.BaseURL = overlay.LLM.BaseURL
	}
	if overlay.LLM.Model != "" {
		base.LLM.Model = overlay.LLM.Model
	}
	if overlay.LLM.APIKey != "" {
		base.LLM.APIKey = overlay.LLM.APIKey
	}
	if overlay.LLM.Temperature != 0 {
		base.LLM.Temperature = overlay.LLM.Temperature
	}
	if overlay.LLM.Timeout != 0 {
		base.LLM.Timeout = overlay.LLM.Timeout
	}

	if overlay.Generator.OutputDir != "" {
		base.Generator.OutputDir = overlay.Generator.OutputDir
	}
	if overlay.Generator.AssetsDir != "" {
		base.Generator.AssetsDir = overlay.Generator.AssetsDir
	}
	if overlay.Generator.Catalog != "" {
		base.Generator.Catalog = overlay.Generator.Catalog
	}
	if overlay.Generator.DefaultTemplate != "" {
		base.Generator.DefaultTemplate = overlay.Generator.DefaultTemplate
	}

	if overlay.Logging.Level != "" {
		base.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Verbose {
		base.Logging.Verbose = true
	}
}

// deepCopy copies a configuration so merges never mutate their inputs
func deepCopy(config *entities.Config) *entities.Config {
	if config == nil {
		return GetDefaultConfig()
	}

	result := *config
	result.Server.CORSOrigins = append([]string(nil), config.Server.CORSOrigins...)
	return &result
}
