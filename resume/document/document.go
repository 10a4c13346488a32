package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"ats-resume/resume/render"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 10.0
	marginTop    = 10.0
	marginRight  = 10.0
	marginBottom = 20.0

	fontFamily = "Helvetica"
	fontSize   = 12.0
	// 1.5 times the font size, converted from points to millimetres.
	lineHeight = fontSize * 1.5 * 25.4 / 72

	logoWidth         = 30.0
	personalBlockGap  = 10.0
	headerRuleOffset  = 1.0
	headerRuleSpacing = 2.0
	headerRuleWidth   = 0.5

	logoImageName = "logo"
)

var (
	backgroundColor = rgb{46, 46, 56}
	textColor       = rgb{255, 255, 255}
	ruleColor       = rgb{255, 255, 0}
)

type rgb struct{ r, g, b int }

// ErrBuild wraps failures reported by the PDF engine.
var ErrBuild = errors.New("build pdf")

// Builder lays rendered résumé text out on styled A4 pages.
type Builder struct {
	logo    Logo
	headers []string
}

// NewBuilder returns a Builder drawing logo on the first page.
func NewBuilder(logo Logo) *Builder {
	if len(logo.Data) == 0 {
		logo = DefaultLogo()
	}
	return &Builder{logo: logo, headers: render.SectionHeaders}
}

// Document is a finished, serialised PDF.
type Document struct {
	data        []byte
	pages       int
	styledPages int
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.pages }

// Bytes returns the serialised PDF.
func (d *Document) Bytes() []byte { return d.data }

// WriteTo writes the PDF to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.data)
	return int64(n), err
}

// cursor is the drawing position: the current page and the y offset on it.
type cursor struct {
	page int
	y    float64
}

// fits reports whether one more line starting at c.y stays above the bottom margin.
func (c cursor) fits() bool {
	return c.y+lineHeight <= pageHeight-marginBottom
}

type layout struct {
	pdf         *fpdf.Fpdf
	styledPages int
}

func (l *layout) newPage(c cursor) cursor {
	l.pdf.AddPage()
	l.applyStyle()
	return cursor{page: c.page + 1, y: marginTop}
}

func (l *layout) applyStyle() {
	l.pdf.SetFillColor(backgroundColor.r, backgroundColor.g, backgroundColor.b)
	l.pdf.Rect(0, 0, pageWidth, pageHeight, "F")
	l.pdf.SetFont(fontFamily, "", fontSize)
	l.pdf.SetTextColor(textColor.r, textColor.g, textColor.b)
	l.styledPages++
}

// Build lays out text and serialises the result.
//
// The personal information block (from its header up to the first blank line) is
// drawn first at the top margin next to the logo. Every other line follows below
// it; section headers are underlined. A new page starts only when the next line
// would cross the bottom margin.
func (b *Builder) Build(text string) (*Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)

	l := &layout{pdf: pdf}
	cur := l.newPage(cursor{})

	personal, rest := splitPersonalBlock(strings.Split(text, "\n"))

	pdf.SetXY(marginLeft, cur.y)
	if len(personal) > 0 {
		pdf.MultiCell(0, lineHeight, toWindows1252(strings.Join(personal, "\n")), "", "L", false)
	}
	b.drawLogo(pdf, cur.y)
	cur.y += float64(len(personal))*lineHeight + personalBlockGap

	for _, line := range rest {
		if !cur.fits() {
			cur = l.newPage(cur)
		}
		pdf.SetXY(marginLeft, cur.y)
		pdf.MultiCell(0, lineHeight, toWindows1252(line), "", "", false)
		cur.y = pdf.GetY()

		if b.isHeader(line) {
			cur.y += headerRuleOffset
			pdf.SetDrawColor(ruleColor.r, ruleColor.g, ruleColor.b)
			pdf.SetLineWidth(headerRuleWidth)
			pdf.Line(marginLeft, cur.y, pageWidth-marginRight, cur.y)
			cur.y += headerRuleSpacing
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return &Document{data: buf.Bytes(), pages: pdf.PageCount(), styledPages: l.styledPages}, nil
}

func (b *Builder) drawLogo(pdf *fpdf.Fpdf, y float64) {
	opts := fpdf.ImageOptions{ImageType: b.logo.Type}
	pdf.RegisterImageOptionsReader(logoImageName, opts, bytes.NewReader(b.logo.Data))
	pdf.ImageOptions(logoImageName, pageWidth-marginRight-logoWidth, y, logoWidth, 0, false, opts, 0, "")
}

func (b *Builder) isHeader(line string) bool {
	for _, h := range b.headers {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}

// splitPersonalBlock separates the personal information section from the other lines.
func splitPersonalBlock(lines []string) (personal, rest []string) {
	inPersonal := false
	done := false
	for _, line := range lines {
		switch {
		case !done && !inPersonal && strings.Contains(line, render.HeaderPersonalInformation):
			inPersonal = true
			personal = append(personal, line)
		case inPersonal && strings.TrimSpace(line) == "":
			inPersonal = false
			done = true
		case inPersonal:
			personal = append(personal, line)
		default:
			rest = append(rest, line)
		}
	}
	return personal, rest
}
