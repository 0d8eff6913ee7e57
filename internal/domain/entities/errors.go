package entities

import (
	"errors"
	"fmt"
)

// Configuration errors abort the current request and are never retried.
var (
	// ErrNoContentLayouts is returned when a template descriptor carries an
	// empty content layout rotation.
	ErrNoContentLayouts = errors.New("template has no content layouts")

	// ErrMissingAPIKey is returned when no LLM credential is configured.
	ErrMissingAPIKey = errors.New("LLM API key is not configured")

	// ErrInvalidAPIKey is returned when the configured credential is malformed.
	ErrInvalidAPIKey = errors.New(`LLM API key is malformed (must start with "sk-")`)

	// ErrUnknownTemplate is returned by the strict generation entrypoint when
	// the requested template id is not registered.
	ErrUnknownTemplate = errors.New("unknown template")
)

// LayoutRangeError reports a layout index referenced by a template descriptor
// that does not exist in the bound theme.
type LayoutRangeError struct {
	Index int
	Count int
}

func (e *LayoutRangeError) Error() string {
	return fmt.Sprintf("layout index %d out of range (template provides %d layouts)", e.Index, e.Count)
}

// UpstreamError reports a non-success response from the LLM service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("LLM service returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("LLM service call failed: %s", e.Body)
}

// IsConfigurationError reports whether err belongs to the configuration
// error family (fatal to the request, never retried).
func IsConfigurationError(err error) bool {
	var lre *LayoutRangeError
	return errors.Is(err, ErrNoContentLayouts) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrInvalidAPIKey) ||
		errors.Is(err, ErrUnknownTemplate) ||
		errors.As(err, &lre)
}

// IsUpstreamError reports whether err originated from the LLM service.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
