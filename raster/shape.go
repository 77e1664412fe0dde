package raster

import (
	"image"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/language"
)

// Glyph is one positioned glyph. Coordinates grow down and are relative to
// the run origin on the baseline.
type Glyph struct {
	ID font.GID

	// Cluster indexes the first rune of the source text this glyph belongs to.
	Cluster int
	Dot     fixed.Point26_6
	Bounds  fixed.Rectangle26_6
	Advance fixed.Int26_6
}

// Run is a shaped line of text. Glyphs are in visual order, left to right.
type Run struct {
	Text      []rune
	Glyphs    []Glyph
	Size      fixed.Int26_6
	Advance   fixed.Int26_6
	Ascent    fixed.Int26_6
	Descent   fixed.Int26_6
	Direction di.Direction
}

// Extents are the ink and logical boxes of a run, relative to its origin.
type Extents struct {
	Ink     fixed.Rectangle26_6
	Logical fixed.Rectangle26_6
}

// Empty reports whether no visible pixel would be drawn.
func (e Extents) Empty() bool {
	return e.Ink.Max.X-e.Ink.Min.X <= 0 || e.Ink.Max.Y-e.Ink.Min.Y <= 0
}

// CanvasSize is the smallest size holding both boxes.
func (e Extents) CanvasSize() (width, height int) {
	width = max(e.Ink.Max.X-e.Ink.Min.X, e.Logical.Max.X-e.Logical.Min.X).Ceil()
	height = max(e.Ink.Max.Y-e.Ink.Min.Y, e.Logical.Max.Y-e.Logical.Min.Y).Ceil()
	return width, height
}

// Origin is where the run origin lands on the canvas.
func (e Extents) Origin() fixed.Point26_6 {
	return fixed.P(-e.Logical.Min.X.Ceil(), -e.Logical.Min.Y.Ceil())
}

// Shape runs the OpenType shaper over text with the script, direction and
// language taken from text and lang, so contextual forms, ligatures and
// mark positioning come from the font's GSUB and GPOS tables.
func Shape(face *font.Face, text []rune, lang string, size fixed.Int26_6) Run {
	dir := textDirection(text, lang)
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: dir,
		Face:      face,
		Size:      size,
		Script:    textScript(text),
		Language:  shapingLanguage(lang),
	}

	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	run := Run{
		Text:      text,
		Glyphs:    make([]Glyph, 0, len(out.Glyphs)),
		Size:      size,
		Ascent:    abs(out.LineBounds.Ascent),
		Descent:   abs(out.LineBounds.Descent),
		Direction: dir,
	}

	// The shaper's y axis points up; ours points down.
	var pen fixed.Int26_6
	for _, g := range out.Glyphs {
		dot := fixed.Point26_6{X: pen + g.XOffset, Y: -g.YOffset}
		glyph := Glyph{
			ID:      g.GlyphID,
			Cluster: g.ClusterIndex,
			Dot:     dot,
			Advance: g.XAdvance,
		}
		if g.Width != 0 && g.Height != 0 {
			x0, x1 := dot.X+g.XBearing, dot.X+g.XBearing+g.Width
			y0, y1 := dot.Y-g.YBearing, dot.Y-g.YBearing-g.Height
			glyph.Bounds = fixed.Rectangle26_6{
				Min: fixed.Point26_6{X: min(x0, x1), Y: min(y0, y1)},
				Max: fixed.Point26_6{X: max(x0, x1), Y: max(y0, y1)},
			}
		}
		run.Glyphs = append(run.Glyphs, glyph)
		pen += g.XAdvance
	}
	run.Advance = pen
	return run
}

// Extents measures the run.
func (r Run) Extents() Extents {
	var e Extents
	for _, g := range r.Glyphs {
		if r.blank(g) || g.Bounds.Empty() {
			continue
		}
		e.Ink = e.Ink.Union(g.Bounds)
	}
	e.Logical = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -r.Ascent},
		Max: fixed.Point26_6{X: r.Advance, Y: r.Descent},
	}
	return e
}

// covers reports whether the font had a glyph for every visible rune.
// Uncovered runes come back from the shaper as .notdef.
func (r Run) covers() bool {
	for _, g := range r.Glyphs {
		if g.ID == 0 && !r.blank(g) {
			return false
		}
	}
	return true
}

func (r Run) blank(g Glyph) bool {
	return g.Cluster >= 0 && g.Cluster < len(r.Text) && skipRune(r.Text[g.Cluster])
}

// Draw fills the glyph outlines of the run with src, the run origin placed
// at origin on dst.
func (r Run) Draw(dst draw.Image, face *font.Face, origin fixed.Point26_6, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	scale := float32(r.Size) / 64 / float32(face.Upem())

	for _, g := range r.Glyphs {
		if g.Bounds.Empty() {
			continue
		}
		outline, ok := face.GlyphData(g.ID).(font.GlyphOutline)
		if !ok {
			continue
		}
		x := float32(origin.X+g.Dot.X) / 64
		y := float32(origin.Y+g.Dot.Y) / 64

		open := false
		for _, seg := range outline.Segments {
			a := seg.Args
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(x+a[0].X*scale, y-a[0].Y*scale)
				open = true
			case ot.SegmentOpLineTo:
				z.LineTo(x+a[0].X*scale, y-a[0].Y*scale)
			case ot.SegmentOpQuadTo:
				z.QuadTo(x+a[0].X*scale, y-a[0].Y*scale, x+a[1].X*scale, y-a[1].Y*scale)
			case ot.SegmentOpCubeTo:
				z.CubeTo(x+a[0].X*scale, y-a[0].Y*scale, x+a[1].X*scale, y-a[1].Y*scale,
					x+a[2].X*scale, y-a[2].Y*scale)
			}
		}
		if open {
			z.ClosePath()
		}
	}
	z.Draw(dst, b, src, image.Point{})
}

var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
}

var rtlRanges = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
	unicode.Adlam,
	unicode.Hanifi_Rohingya,
}

// ParseLanguage converts a gettext locale name such as "pt_BR" or
// "sr@latin" into a BCP 47 tag. Unknown names yield language.Und.
func ParseLanguage(name string) language.Tag {
	if idx := strings.IndexAny(name, "@."); idx != -1 {
		name = name[:idx]
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// IsRTL reports whether the language is written right to left.
func IsRTL(name string) bool {
	tag := ParseLanguage(name)
	if tag == language.Und {
		return false
	}
	script, _ := tag.Script()
	return rtlScripts[script.String()]
}

// textDirection follows the first strong letter of text and falls back to
// the language when there is none.
func textDirection(text []rune, lang string) di.Direction {
	for _, r := range text {
		if unicode.IsOneOf(rtlRanges, r) {
			return di.DirectionRTL
		}
		if unicode.IsLetter(r) {
			return di.DirectionLTR
		}
	}
	if IsRTL(lang) {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func textScript(text []rune) gtlanguage.Script {
	for _, r := range text {
		s := gtlanguage.LookupScript(r)
		if s != gtlanguage.Common && s != gtlanguage.Inherited {
			return s
		}
	}
	return gtlanguage.Latin
}

func shapingLanguage(lang string) gtlanguage.Language {
	tag := ParseLanguage(lang)
	if tag == language.Und {
		return ""
	}
	return gtlanguage.NewLanguage(tag.String())
}

func skipRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

func abs(v fixed.Int26_6) fixed.Int26_6 {
	if v < 0 {
		return -v
	}
	return v
}
