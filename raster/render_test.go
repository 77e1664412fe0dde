package raster

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/math/fixed"
)

const label = "Installing firmware update"

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts: %v", err)
	}
	return NewRenderer(fonts)
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		height int
		want   float64
	}{
		{480, 15},
		{600, 18.75},
		{4320, 135},
	}
	for _, tt := range tests {
		if got := FontSize(tt.height); got != tt.want {
			t.Errorf("FontSize(%d) = %v, want %v", tt.height, got, tt.want)
		}
	}
}

func TestRenderCanvasMatchesExtents(t *testing.T) {
	r := newTestRenderer(t)

	for _, height := range []int{480, 1080, 2160} {
		img, err := r.Render("en", label, height)
		if err != nil {
			t.Fatalf("Render(%d): %v", height, err)
		}
		ext, err := r.Measure("en", label, height)
		if err != nil {
			t.Fatalf("Measure(%d): %v", height, err)
		}
		w, h := ext.CanvasSize()
		if img.Width != w || img.Height != h {
			t.Errorf("height %d: canvas %dx%d, extents %dx%d", height, img.Width, img.Height, w, h)
		}
		if img.Height >= height {
			t.Errorf("canvas height %d not smaller than screen height %d", img.Height, height)
		}

		decoded, err := DecodeBMP(img.BMP)
		if err != nil {
			t.Fatalf("DecodeBMP: %v", err)
		}
		b := decoded.Bounds()
		if b.Dx() != img.Width || b.Dy() != img.Height {
			t.Errorf("decoded %dx%d, want %dx%d", b.Dx(), b.Dy(), img.Width, img.Height)
		}
	}
}

func TestRenderScalesWithResolution(t *testing.T) {
	r := newTestRenderer(t)

	small, err := r.Render("en", label, 480)
	if err != nil {
		t.Fatal(err)
	}
	large, err := r.Render("en", label, 4320)
	if err != nil {
		t.Fatal(err)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("8K canvas %dx%d not larger than VGA canvas %dx%d",
			large.Width, large.Height, small.Width, small.Height)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t)

	a, err := r.Render("de", "Firmware-Aktualisierung wird installiert", 768)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render("de", "Firmware-Aktualisierung wird installiert", 768)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.BMP, b.BMP) {
		t.Error("two renders of the same input differ")
	}
}

func TestRenderWhiteOnBlack(t *testing.T) {
	r := newTestRenderer(t)

	canvas, _, _, err := r.Rasterize("en", label, 1080)
	if err != nil {
		t.Fatal(err)
	}

	var white, black bool
	b := canvas.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := canvas.RGBAAt(x, y)
			if c.A != 0xff {
				t.Fatalf("pixel (%d,%d) not opaque: %v", x, y, c)
			}
			switch c {
			case color.RGBA{0xff, 0xff, 0xff, 0xff}:
				white = true
			case color.RGBA{0, 0, 0, 0xff}:
				black = true
			}
		}
	}
	if !white || !black {
		t.Errorf("white=%v black=%v, want both", white, black)
	}
}

func TestRenderMissingFont(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		name string
		lang string
		text string
	}{
		{"uncovered script", "zh_CN", "正在安装固件更新"},
		{"blank", "en", "   "},
		{"empty", "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.lang, tt.text, 480)
			if !errors.Is(err, ErrMissingFont) {
				t.Errorf("err = %v, want ErrMissingFont", err)
			}
		})
	}
}

func TestRendererWithoutFonts(t *testing.T) {
	_, err := NewRenderer(nil).Render("en", label, 480)
	if !errors.Is(err, ErrMissingFont) {
		t.Errorf("err = %v, want ErrMissingFont", err)
	}
}

func TestIsRTL(t *testing.T) {
	tests := map[string]bool{
		"he":       true,
		"ar":       true,
		"fa_IR":    true,
		"de":       false,
		"pt_BR":    false,
		"sr@latin": false,
		"zh_CN":    false,
		"???":      false,
	}
	for lang, want := range tests {
		if got := IsRTL(lang); got != want {
			t.Errorf("IsRTL(%q) = %v, want %v", lang, got, want)
		}
	}
}

func TestTextDirection(t *testing.T) {
	tests := []struct {
		text string
		lang string
		want di.Direction
	}{
		{"Installing firmware update", "en", di.DirectionLTR},
		{"سلام", "ar", di.DirectionRTL},
		{"שלום", "he", di.DirectionRTL},
		{"12 %", "fa", di.DirectionRTL},
		{"12 %", "de", di.DirectionLTR},
		{"UEFI سلام", "ar", di.DirectionLTR},
	}
	for _, tt := range tests {
		if got := textDirection([]rune(tt.text), tt.lang); got != tt.want {
			t.Errorf("textDirection(%q, %q) = %v, want %v", tt.text, tt.lang, got, tt.want)
		}
	}
}

func TestShapeLatin(t *testing.T) {
	r := newTestRenderer(t)
	face := r.Fonts()[0].face()

	text := []rune("abc")
	run := Shape(face, text, "en", fixed.I(16))
	if len(run.Glyphs) != len(text) {
		t.Fatalf("got %d glyphs, want %d", len(run.Glyphs), len(text))
	}
	for i, g := range run.Glyphs {
		want, ok := face.NominalGlyph(text[i])
		if !ok {
			t.Fatalf("no cmap entry for %q", text[i])
		}
		if g.ID != want || g.Cluster != i {
			t.Errorf("glyph %d = id %d cluster %d, want id %d cluster %d", i, g.ID, g.Cluster, want, i)
		}
		if i > 0 && g.Dot.X <= run.Glyphs[i-1].Dot.X {
			t.Errorf("glyph %d not to the right of glyph %d", i, i-1)
		}
	}
	if !run.covers() {
		t.Error("covers() = false for Latin text")
	}
}

func TestShapeUncoveredIsNotdef(t *testing.T) {
	r := newTestRenderer(t)
	run := Shape(r.Fonts()[0].face(), []rune("固件"), "zh_CN", fixed.I(16))
	if run.covers() {
		t.Error("covers() = true for text the font has no glyphs for")
	}
}

// arabicFonts are common locations of fonts carrying Arabic GSUB tables.
var arabicFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansArabic-Regular.ttf",
}

func loadArabicFont(t *testing.T) *Font {
	t.Helper()
	for _, path := range arabicFonts {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := LoadFont(path)
		if err != nil {
			t.Fatalf("LoadFont(%s): %v", path, err)
		}
		return f
	}
	t.Skip("no font with Arabic coverage installed")
	return nil
}

func TestShapeArabicJoins(t *testing.T) {
	f := loadArabicFont(t)
	face := f.face()

	// seen, lam, alef, meem: seen takes its initial form.
	text := []rune("سلام")
	run := Shape(face, text, "ar", fixed.I(32))
	if run.Direction != di.DirectionRTL {
		t.Fatalf("direction = %v, want RTL", run.Direction)
	}
	if !run.covers() {
		t.Fatal("covers() = false")
	}

	first := -1
	for i, g := range run.Glyphs {
		if g.Cluster == 0 {
			first = i
		}
	}
	if first == -1 {
		t.Fatal("no glyph for the first letter")
	}
	seen := run.Glyphs[first]

	isolated, _ := face.NominalGlyph(text[0])
	if seen.ID == isolated {
		t.Errorf("first letter drawn with its isolated glyph %d", isolated)
	}
	if initial, ok := face.NominalGlyph(0xFEB3); ok && seen.ID != initial {
		t.Errorf("first letter glyph = %d, want initial form %d", seen.ID, initial)
	}

	// Visual order puts the first letter of a right-to-left word on the right.
	for i, g := range run.Glyphs {
		if i != first && g.Dot.X >= seen.Dot.X {
			t.Errorf("glyph %d (cluster %d) at %v is right of the first letter at %v",
				i, g.Cluster, g.Dot.X, seen.Dot.X)
		}
	}
}

func TestRenderArabic(t *testing.T) {
	r := NewRenderer([]*Font{loadArabicFont(t)})

	img, err := r.Render("ar", "جارٍ تثبيت تحديث البرنامج الثابت", 1080)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := DecodeBMP(img.BMP); err != nil {
		t.Fatalf("DecodeBMP: %v", err)
	}
}
