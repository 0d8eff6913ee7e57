package services

import (
	"strings"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
)

// bulletMarker prefixes bullet lines in the outline format the LLM is
// prompted to produce; everything else is a section title.
const bulletMarker = "-"

// lineKind tags a classified outline line.
type lineKind int

const (
	lineTitle lineKind = iota
	lineBullet
	lineTerminator
)

// outlineLine is a trimmed outline line with its classification. Bullet
// lines carry their text with the marker already stripped.
type outlineLine struct {
	kind lineKind
	text string
}

// classifyLine is the single classification step; the scan loop below never
// inspects raw strings itself.
func classifyLine(raw string) outlineLine {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return outlineLine{kind: lineTerminator}
	case strings.HasPrefix(trimmed, bulletMarker):
		text := strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker))
		return outlineLine{kind: lineBullet, text: text}
	default:
		return outlineLine{kind: lineTitle, text: trimmed}
	}
}

// sectionGroup accumulates one in-progress section during the scan.
type sectionGroup struct {
	title    string
	hasTitle bool
	bullets  []string
}

// ready reports whether the group can be emitted: emission requires both a
// title and at least one bullet.
func (g *sectionGroup) ready() bool {
	return g.hasTitle && len(g.bullets) > 0
}

// OutlineStats counts input that was silently discarded during parsing.
// Discarding is deliberate policy, not an error; the counts exist so the
// caller can log what the user lost.
type OutlineStats struct {
	// DroppedSections counts section titles that never received a bullet
	DroppedSections int

	// OrphanBullets counts bullet lines that appeared before any title
	OrphanBullets int
}

// AssignSlides parses a semi-structured outline into content slide specs and
// assigns each one a layout from the rotation: the Nth emitted slide uses
// contentLayouts[(N-1) mod len]. The cover slide is not produced here; the
// renderer assembles it from the verbatim deck title.
//
// Blank lines are discarded up front and a synthetic terminator flushes the
// final group, so end-of-input needs no special casing. Sections without
// bullets and bullets without a section are dropped, never rejected.
func AssignSlides(outline string, contentLayouts []int) ([]entities.SlideSpec, OutlineStats, error) {
	var stats OutlineStats

	if len(contentLayouts) == 0 {
		return nil, stats, entities.ErrNoContentLayouts
	}

	var lines []outlineLine
	for _, raw := range strings.Split(outline, "\n") {
		if line := classifyLine(raw); line.kind != lineTerminator {
			lines = append(lines, line)
		}
	}
	lines = append(lines, outlineLine{kind: lineTerminator})

	var (
		slides []entities.SlideSpec
		group  sectionGroup
		cursor int
	)

	flush := func() {
		switch {
		case group.ready():
			slides = append(slides, entities.SlideSpec{
				Title:   group.title,
				Bullets: group.bullets,
				Layout:  contentLayouts[cursor%len(contentLayouts)],
			})
			cursor++
		case group.hasTitle:
			stats.DroppedSections++
		case len(group.bullets) > 0:
			stats.OrphanBullets += len(group.bullets)
		}
		group = sectionGroup{}
	}

	for _, line := range lines {
		switch line.kind {
		case lineTerminator:
			flush()
		case lineTitle:
			flush()
			group.title = line.text
			group.hasTitle = true
		case lineBullet:
			group.bullets = append(group.bullets, line.text)
		}
	}

	return slides, stats, nil
}
