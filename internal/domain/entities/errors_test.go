package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, IsConfigurationError(ErrNoContentLayouts))
	assert.True(t, IsConfigurationError(ErrMissingAPIKey))
	assert.True(t, IsConfigurationError(ErrInvalidAPIKey))
	assert.True(t, IsConfigurationError(ErrUnknownTemplate))
	assert.True(t, IsConfigurationError(&LayoutRangeError{Index: 7, Count: 4}))

	// Wrapped errors keep their classification
	wrapped := fmt.Errorf("rendering deck: %w", &LayoutRangeError{Index: 9, Count: 4})
	assert.True(t, IsConfigurationError(wrapped))

	assert.False(t, IsConfigurationError(errors.New("something else")))
	assert.False(t, IsConfigurationError(&UpstreamError{Status: 500}))
}

func TestIsUpstreamError(t *testing.T) {
	assert.True(t, IsUpstreamError(&UpstreamError{Status: 429, Body: "rate limited"}))
	assert.True(t, IsUpstreamError(fmt.Errorf("generating title: %w", &UpstreamError{Status: 502})))
	assert.False(t, IsUpstreamError(ErrMissingAPIKey))
}

func TestLayoutRangeErrorMessage(t *testing.T) {
	err := &LayoutRangeError{Index: 5, Count: 4}
	assert.Equal(t, "layout index 5 out of range (template provides 4 layouts)", err.Error())
}

func TestUpstreamErrorMessage(t *testing.T) {
	withStatus := &UpstreamError{Status: 503, Body: "overloaded"}
	assert.Contains(t, withStatus.Error(), "503")
	assert.Contains(t, withStatus.Error(), "overloaded")

	noStatus := &UpstreamError{Body: "connection refused"}
	assert.Contains(t, noStatus.Error(), "connection refused")
}
