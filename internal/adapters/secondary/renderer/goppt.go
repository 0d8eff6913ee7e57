package renderer

import (
	"bytes"
	"context"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/promptdeck/promptdeck/internal/domain/entities"
	"github.com/promptdeck/promptdeck/internal/domain/ports"
)

// Slide geometry, 16:9 widescreen. EMU is the OOXML length unit.
const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)

	marginLeft   = int64(0.4 * emuPerInch)
	contentWidth = int64(9.2 * emuPerInch)

	fontTitle   = 36
	fontHeading = 28
	fontBody    = 16
	fontFooter  = 9
)

// layoutBuilder paints one slide. The cover builder receives the deck title
// and no bullets; content builders receive the section title and its bullets.
type layoutBuilder func(slide *ppt.Slide, pal palette, title string, bullets []string)

// GoPPTRenderer renders slide specs into a PPTX document. Every theme offers
// the same layout table: index 0 is the cover, the rest are content layouts
// the template rotation may reference.
type GoPPTRenderer struct {
	layouts []layoutBuilder
}

// NewGoPPTRenderer creates a new PPTX renderer
func NewGoPPTRenderer() *GoPPTRenderer {
	return &GoPPTRenderer{
		layouts: []layoutBuilder{
			buildCoverSlide,
			buildBulletSlide,
			buildBoxedSlide,
			buildSplitSlide,
		},
	}
}

// LayoutCount returns the number of layouts available to the descriptor
func (r *GoPPTRenderer) LayoutCount(tpl *entities.TemplateDescriptor) int {
	return len(r.layouts)
}

// Render builds the deck: layout validation first, then the cover slide,
// then one content slide per spec, then serialization. No slide is created
// until every referenced index is known to be valid.
func (r *GoPPTRenderer) Render(ctx context.Context, tpl *entities.TemplateDescriptor, title string, slides []entities.SlideSpec) ([]byte, error) {
	count := len(r.layouts)
	if tpl.CoverLayout < 0 || tpl.CoverLayout >= count {
		return nil, &entities.LayoutRangeError{Index: tpl.CoverLayout, Count: count}
	}
	for _, spec := range slides {
		if spec.Layout < 0 || spec.Layout >= count {
			return nil, &entities.LayoutRangeError{Index: spec.Layout, Count: count}
		}
	}

	pal := paletteFor(tpl.ThemeName())

	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = "promptdeck"

	// GoPPT presentations start with one slide; it becomes the cover
	r.layouts[tpl.CoverLayout](p.GetActiveSlide(), pal, title, nil)

	for _, spec := range slides {
		slide := p.CreateSlide()
		r.layouts[spec.Layout](slide, pal, spec.Title, spec.Bullets)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("creating PPTX writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing deck: %w", err)
	}

	return buf.Bytes(), nil
}

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// paintBackdrop fills the whole slide for themes with a dark background
func paintBackdrop(slide *ppt.Slide, pal palette) {
	if pal.backdrop == "" {
		return
	}
	backdrop := slide.CreateRichTextShape()
	backdrop.SetOffsetX(0).SetOffsetY(0)
	backdrop.SetWidth(slideWidth).SetHeight(slideHeight)
	backdrop.SetFill(solidFill(pal.backdrop))
}

// buildCoverSlide is layout 0: centered deck title between two accent bars.
// The subtitle region is created empty on purpose; the cover never inherits
// stray placeholder text.
func buildCoverSlide(slide *ppt.Slide, pal palette, title string, _ []string) {
	paintBackdrop(slide, pal)

	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(slideWidth).SetHeight(int64(0.15 * emuPerInch))
	topBar.SetFill(solidFill(pal.accent))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(2.0 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(1.2 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(pal.heading))
	alignCenter(titleShape.GetActiveParagraph())

	subtitleShape := slide.CreateRichTextShape()
	subtitleShape.SetOffsetX(marginLeft).SetOffsetY(int64(3.4 * emuPerInch))
	subtitleShape.SetWidth(contentWidth).SetHeight(int64(0.5 * emuPerInch))
	subtitleShape.CreateTextRun("")

	footer := slide.CreateRichTextShape()
	footer.SetOffsetX(marginLeft).SetOffsetY(int64(5.05 * emuPerInch))
	footer.SetWidth(contentWidth).SetHeight(int64(0.3 * emuPerInch))
	ft := footer.CreateTextRun("Generated with promptdeck")
	ft.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(pal.muted))
	alignCenter(footer.GetActiveParagraph())

	bottomBar := slide.CreateRichTextShape()
	bottomBar.SetOffsetX(0).SetOffsetY(int64(5.5 * emuPerInch))
	bottomBar.SetWidth(slideWidth).SetHeight(int64(0.125 * emuPerInch))
	bottomBar.SetFill(solidFill(pal.accent))
}

// paintHeading places the accent bar and section title shared by all
// content layouts
func paintHeading(slide *ppt.Slide, pal palette, title string) {
	paintBackdrop(slide, pal)

	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(slideWidth).SetHeight(int64(0.08 * emuPerInch))
	topBar.SetFill(solidFill(pal.accent))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(contentWidth).SetHeight(int64(0.6 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(pal.heading))
}

// buildBulletSlide is layout 1: a plain bulleted list
func buildBulletSlide(slide *ppt.Slide, pal palette, title string, bullets []string) {
	paintHeading(slide, pal, title)

	body := slide.CreateRichTextShape()
	body.SetOffsetX(int64(0.7 * emuPerInch)).SetOffsetY(int64(1.3 * emuPerInch))
	body.SetWidth(int64(8.6 * emuPerInch)).SetHeight(int64(3.9 * emuPerInch))

	for i, bullet := range bullets {
		if i > 0 {
			body.CreateParagraph()
		}
		glyph := body.CreateTextRun("▪ ")
		glyph.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(pal.accent))
		text := body.CreateTextRun(bullet)
		text.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(pal.body))
	}
}

// buildBoxedSlide is layout 2: one filled box per bullet
func buildBoxedSlide(slide *ppt.Slide, pal palette, title string, bullets []string) {
	paintHeading(slide, pal, title)

	const boxHeight = 0.75
	const spacing = 0.2

	for i, bullet := range bullets {
		y := 1.2 + float64(i)*(boxHeight+spacing)

		box := slide.CreateRichTextShape()
		box.SetOffsetX(int64(0.6 * emuPerInch)).SetOffsetY(int64(y * emuPerInch))
		box.SetWidth(int64(8.8 * emuPerInch)).SetHeight(int64(boxHeight * emuPerInch))
		box.SetFill(solidFill(pal.boxFill))

		text := box.CreateTextRun(bullet)
		text.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(pal.body))
	}
}

// buildSplitSlide is layout 3: bullets alternating across two columns
func buildSplitSlide(slide *ppt.Slide, pal palette, title string, bullets []string) {
	paintHeading(slide, pal, title)

	divider := slide.CreateRichTextShape()
	divider.SetOffsetX(slideWidth / 2).SetOffsetY(int64(1.3 * emuPerInch))
	divider.SetWidth(int64(0.02 * emuPerInch)).SetHeight(int64(3.7 * emuPerInch))
	divider.SetFill(solidFill(pal.accent))

	const colWidth = 4.1
	const rowHeight = 0.9

	for i, bullet := range bullets {
		col := i % 2
		row := i / 2

		x := 0.5 + float64(col)*4.9
		y := 1.3 + float64(row)*rowHeight

		cell := slide.CreateRichTextShape()
		cell.SetOffsetX(int64(x * emuPerInch)).SetOffsetY(int64(y * emuPerInch))
		cell.SetWidth(int64(colWidth * emuPerInch)).SetHeight(int64(rowHeight * 0.9 * emuPerInch))

		glyph := cell.CreateTextRun("▪ ")
		glyph.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(pal.accent))
		text := cell.CreateTextRun(bullet)
		text.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(pal.body))
	}
}

// Ensure GoPPTRenderer implements ports.DeckRenderer
var _ ports.DeckRenderer = (*GoPPTRenderer)(nil)
