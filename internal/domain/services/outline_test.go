package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		raw  string
		kind lineKind
		text string
	}{
		{"Background", lineTitle, "Background"},
		{"  Background  ", lineTitle, "Background"},
		{"- first point", lineBullet, "first point"},
		{"-no space", lineBullet, "no space"},
		{"   - indented bullet", lineBullet, "indented bullet"},
		{"-", lineBullet, ""},
		{"", lineTerminator, ""},
		{"   \t ", lineTerminator, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			line := classifyLine(tt.raw)
			assert.Equal(t, tt.kind, line.kind)
			assert.Equal(t, tt.text, line.text)
		})
	}
}

func TestAssignSlidesTwoSections(t *testing.T) {
	outline := "A\n-x\n-y\n\nB\n-z"

	slides, stats, err := AssignSlides(outline, []int{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, slides, 2)

	assert.Equal(t, entities.SlideSpec{Title: "A", Bullets: []string{"x", "y"}, Layout: 1}, slides[0])
	assert.Equal(t, entities.SlideSpec{Title: "B", Bullets: []string{"z"}, Layout: 2}, slides[1])
	assert.Zero(t, stats.DroppedSections)
	assert.Zero(t, stats.OrphanBullets)
}

func TestAssignSlidesLayoutRotation(t *testing.T) {
	// Seven sections against a three-layout rotation must wrap with modulo
	layouts := []int{4, 5, 6}
	var b strings.Builder
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&b, "Section %d\n- point\n\n", i)
	}

	slides, _, err := AssignSlides(b.String(), layouts)
	require.NoError(t, err)
	require.Len(t, slides, 7)

	for i, slide := range slides {
		assert.Equal(t, layouts[i%len(layouts)], slide.Layout, "slide %d", i)
	}
}

func TestAssignSlidesSingleLayout(t *testing.T) {
	slides, _, err := AssignSlides("A\n-x\n\nB\n-y\n\nC\n-z", []int{2})
	require.NoError(t, err)
	require.Len(t, slides, 3)
	for _, slide := range slides {
		assert.Equal(t, 2, slide.Layout)
	}
}

func TestAssignSlidesEmptyLayoutsIsConfigurationError(t *testing.T) {
	_, _, err := AssignSlides("A\n-x", nil)
	require.ErrorIs(t, err, entities.ErrNoContentLayouts)
	assert.True(t, entities.IsConfigurationError(err))
}

func TestAssignSlidesNoBulletsAnywhere(t *testing.T) {
	// Titles alone never produce slides, no matter how many there are
	slides, stats, err := AssignSlides("A\nB\nC\n\nD", []int{1, 2})
	require.NoError(t, err)
	assert.Empty(t, slides)
	assert.Equal(t, 4, stats.DroppedSections)
}

func TestAssignSlidesOrphanBulletsDiscarded(t *testing.T) {
	slides, stats, err := AssignSlides("-orphan\nA\n-x", []int{7, 8})
	require.NoError(t, err)
	require.Len(t, slides, 1)

	assert.Equal(t, entities.SlideSpec{Title: "A", Bullets: []string{"x"}, Layout: 7}, slides[0])
	assert.Equal(t, 1, stats.OrphanBullets)
}

func TestAssignSlidesTrailingTitleDropped(t *testing.T) {
	slides, stats, err := AssignSlides("A\n-x\nTrailing title", []int{1})
	require.NoError(t, err)
	require.Len(t, slides, 1)
	assert.Equal(t, "A", slides[0].Title)
	assert.Equal(t, 1, stats.DroppedSections)
}

func TestAssignSlidesConsecutiveTitlesKeepLast(t *testing.T) {
	// Earlier titles with no bullets are overwritten; only the last one
	// before the bullets produces output
	slides, stats, err := AssignSlides("First\nSecond\n-a\n-b", []int{3})
	require.NoError(t, err)
	require.Len(t, slides, 1)

	assert.Equal(t, "Second", slides[0].Title)
	assert.Equal(t, []string{"a", "b"}, slides[0].Bullets)
	assert.Equal(t, 1, stats.DroppedSections)
}

func TestAssignSlidesEmptyOutline(t *testing.T) {
	slides, stats, err := AssignSlides("", []int{1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, slides)
	assert.Zero(t, stats.DroppedSections)
	assert.Zero(t, stats.OrphanBullets)
}

func TestAssignSlidesBlankLinesIrrelevant(t *testing.T) {
	withBlanks := "\n\n  \nA\n\n-x\n\n\n-y\n\n"
	without := "A\n-x\n-y"

	a, _, err := AssignSlides(withBlanks, []int{1, 2})
	require.NoError(t, err)
	b, _, err := AssignSlides(without, []int{1, 2})
	require.NoError(t, err)

	assert.Equal(t, b, a)
}

func TestAssignSlidesIdempotent(t *testing.T) {
	outline := "A\n-x\n\nB\n-y\n-z\n\nC\n-w"
	layouts := []int{1, 2}

	first, _, err := AssignSlides(outline, layouts)
	require.NoError(t, err)
	second, _, err := AssignSlides(outline, layouts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssignSlidesBareDashKeepsEmptyBullet(t *testing.T) {
	// A lone "-" is a bullet with empty text, matching the marker-strip rule
	slides, _, err := AssignSlides("A\n-", []int{1})
	require.NoError(t, err)
	require.Len(t, slides, 1)
	assert.Equal(t, []string{""}, slides[0].Bullets)
}
