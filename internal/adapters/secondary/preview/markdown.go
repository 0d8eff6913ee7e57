package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// MarkdownPreviewer renders a raw outline into sanitized HTML so frontends
// can show the draft next to the editable text.
type MarkdownPreviewer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewMarkdownPreviewer creates a new outline previewer
func NewMarkdownPreviewer() *MarkdownPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
	)

	p := bluemonday.NewPolicy()
	p.AllowElements("h2", "p", "ul", "li", "strong", "em")

	return &MarkdownPreviewer{md: md, sanitizer: p}
}

// Preview converts the outline into markdown (section titles become
// headings, bullets become list items), renders it, and sanitizes the
// result.
func (p *MarkdownPreviewer) Preview(outline string) (string, error) {
	var md strings.Builder

	for _, raw := range strings.Split(outline, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			md.WriteString("\n")
		case strings.HasPrefix(line, "-"):
			md.WriteString("- " + strings.TrimSpace(strings.TrimPrefix(line, "-")) + "\n")
		default:
			md.WriteString("\n## " + line + "\n")
		}
	}

	var buf bytes.Buffer
	if err := p.md.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("rendering outline preview: %w", err)
	}

	return strings.TrimSpace(p.sanitizer.Sanitize(buf.String())), nil
}

// Ensure MarkdownPreviewer implements ports.OutlinePreviewer
var _ ports.OutlinePreviewer = (*MarkdownPreviewer)(nil)
