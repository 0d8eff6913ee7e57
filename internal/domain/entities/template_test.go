package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateDescriptorValidate(t *testing.T) {
	tests := []struct {
		name    string
		tpl     TemplateDescriptor
		wantErr string
	}{
		{
			name: "valid descriptor",
			tpl: TemplateDescriptor{
				ID:             "blue",
				Name:           "Blue Business",
				CoverLayout:    0,
				ContentLayouts: []int{1, 2, 3},
			},
		},
		{
			name:    "missing id",
			tpl:     TemplateDescriptor{ContentLayouts: []int{1}},
			wantErr: "template id cannot be empty",
		},
		{
			name:    "empty content layouts",
			tpl:     TemplateDescriptor{ID: "x"},
			wantErr: "template has no content layouts",
		},
		{
			name:    "negative cover layout",
			tpl:     TemplateDescriptor{ID: "x", CoverLayout: -1, ContentLayouts: []int{1}},
			wantErr: "cover layout index must be non-negative",
		},
		{
			name:    "negative content layout",
			tpl:     TemplateDescriptor{ID: "x", ContentLayouts: []int{1, -2}},
			wantErr: "content layout index must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tpl.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestTemplateDescriptorEmptyLayoutsIsConfigurationError(t *testing.T) {
	tpl := TemplateDescriptor{ID: "x"}
	err := tpl.Validate()
	assert.True(t, IsConfigurationError(err))
}

func TestThemeName(t *testing.T) {
	tpl := TemplateDescriptor{ID: "green"}
	assert.Equal(t, "green", tpl.ThemeName())

	tpl.Theme = "forest"
	assert.Equal(t, "forest", tpl.ThemeName())
}
