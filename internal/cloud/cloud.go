package cloud

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"hixminer/internal/fileutil"
	"hixminer/internal/textmine"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultMaxWords = 500

	// minSpiralStep is the smallest distance, in pixels, between candidate
	// positions along the spiral and between its turns.
	minSpiralStep = 2.0
	// fillRatio caps the share of the canvas the padded word boxes may
	// claim when the largest scale is chosen.
	fillRatio = 0.5
	// wordPadding keeps a margin around every placed word.
	wordPadding = 2
)

// Dark2 is the default palette, the eight-colour qualitative ColorBrewer scheme.
var Dark2 = []color.Color{
	color.RGBA{0x1b, 0x9e, 0x77, 0xff},
	color.RGBA{0xd9, 0x5f, 0x02, 0xff},
	color.RGBA{0x75, 0x70, 0xb3, 0xff},
	color.RGBA{0xe7, 0x29, 0x8a, 0xff},
	color.RGBA{0x66, 0xa6, 0x1e, 0xff},
	color.RGBA{0xe6, 0xab, 0x02, 0xff},
	color.RGBA{0xa6, 0x76, 0x1d, 0xff},
	color.RGBA{0x66, 0x66, 0x66, 0xff},
}

// Renderer turns word frequencies into an image.
type Renderer interface {
	Render(words []textmine.WordCount) (image.Image, error)
}

// Options configures a Spiral renderer. Zero values fall back to the defaults.
type Options struct {
	Width      int
	Height     int
	MaxWords   int
	Background color.Color
	Palette    []color.Color
}

// Placement is a word positioned on the canvas.
type Placement struct {
	Word   string
	Count  int
	Scale  int
	Bounds image.Rectangle
	Color  color.Color
}

// Spiral lays words out on an Archimedean spiral.
type Spiral struct {
	opts Options
	face font.Face
}

// New returns a Spiral renderer with defaults applied to opts.
func New(opts Options) *Spiral {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultMaxWords
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if len(opts.Palette) == 0 {
		opts.Palette = Dark2
	}
	return &Spiral{opts: opts, face: basicfont.Face7x13}
}

// Render draws the cloud. Empty input returns textmine.ErrEmptyCorpus.
func (s *Spiral) Render(words []textmine.WordCount) (image.Image, error) {
	placements, err := s.Layout(words)
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, s.opts.Width, s.opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(s.opts.Background), image.Point{}, draw.Src)
	for _, p := range placements {
		glyphs := s.glyphs(p.Word, p.Color)
		draw.NearestNeighbor.Scale(canvas, p.Bounds.Inset(wordPadding), glyphs, glyphs.Bounds(), draw.Over, nil)
	}
	return canvas, nil
}

// Layout positions up to MaxWords of the most frequent words. Sizes never
// grow down the list; a word that fits nowhere, even at the smallest size,
// is skipped.
func (s *Spiral) Layout(words []textmine.WordCount) ([]Placement, error) {
	words = topWords(words, s.opts.MaxWords)
	if len(words) == 0 {
		return nil, textmine.ErrEmptyCorpus
	}

	canvas := image.Rect(0, 0, s.opts.Width, s.opts.Height)
	minCount, maxCount := words[len(words)-1].Count, words[0].Count
	maxScale := s.fitScale(words, s.maxScale(words[0].Word))
	occ := newOccupancy(canvas)

	placements := make([]Placement, 0, len(words))
	var tooBig []image.Point
	lastScale := maxScale
	for i, wc := range words {
		w, h := s.measure(wc.Word)
		if w == 0 {
			continue
		}
		for scale := min(scaleFor(wc.Count, minCount, maxCount, maxScale), lastScale); scale >= 1; scale-- {
			size := image.Pt(w*scale+2*wordPadding, h*scale+2*wordPadding)
			if coversAny(size, tooBig) {
				continue
			}
			r, ok := findSpot(canvas, size, occ)
			if !ok {
				tooBig = append(tooBig, size)
				continue
			}
			occ.mark(r)
			placements = append(placements, Placement{
				Word:   wc.Word,
				Count:  wc.Count,
				Scale:  scale,
				Bounds: r,
				Color:  s.opts.Palette[i%len(s.opts.Palette)],
			})
			lastScale = scale
			break
		}
	}
	return placements, nil
}

// coversAny reports whether size is at least as large as a size that
// already failed to fit. Free space only shrinks, so it cannot fit either.
func coversAny(size image.Point, failed []image.Point) bool {
	for _, f := range failed {
		if size.X >= f.X && size.Y >= f.Y {
			return true
		}
	}
	return false
}

func topWords(words []textmine.WordCount, n int) []textmine.WordCount {
	kept := make([]textmine.WordCount, 0, min(len(words), n))
	for _, wc := range words {
		if wc.Word == "" || wc.Count <= 0 {
			continue
		}
		kept = append(kept, wc)
		if len(kept) == n {
			break
		}
	}
	return kept
}

// maxScale sizes the most frequent word to at most half the canvas width
// and a sixth of its height.
func (s *Spiral) maxScale(word string) int {
	w, h := s.measure(word)
	if w == 0 || h == 0 {
		return 1
	}
	return max(1, min(s.opts.Width/(2*w), s.opts.Height/(6*h)))
}

// fitScale lowers top until the padded boxes of all words, at the scales
// they would get, cover no more than fillRatio of the canvas.
func (s *Spiral) fitScale(words []textmine.WordCount, top int) int {
	minCount, maxCount := words[len(words)-1].Count, words[0].Count
	sizes := make([]image.Point, len(words))
	for i, wc := range words {
		w, h := s.measure(wc.Word)
		sizes[i] = image.Pt(w, h)
	}
	budget := fillRatio * float64(s.opts.Width) * float64(s.opts.Height)
	for ; top > 1; top-- {
		area := 0.0
		for i, wc := range words {
			scale := scaleFor(wc.Count, minCount, maxCount, top)
			area += float64(sizes[i].X*scale+2*wordPadding) * float64(sizes[i].Y*scale+2*wordPadding)
		}
		if area <= budget {
			break
		}
	}
	return top
}

func scaleFor(count, minCount, maxCount, maxScale int) int {
	if maxCount <= minCount {
		return maxScale
	}
	ratio := math.Sqrt(float64(count-minCount) / float64(maxCount-minCount))
	return 1 + int(math.Round(ratio*float64(maxScale-1)))
}

func (s *Spiral) measure(word string) (int, int) {
	m := s.face.Metrics()
	return font.MeasureString(s.face, word).Ceil(), (m.Ascent + m.Descent).Ceil()
}

func (s *Spiral) glyphs(word string, c color.Color) *image.RGBA {
	w, h := s.measure(word)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(0, s.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(word)
	return img
}

// findSpot walks an Archimedean spiral outward from the centre until a
// rectangle of the given size fits inside canvas on free cells. Candidates
// are spaced evenly along the curve, a quarter of the word's shorter side
// apart, so gaps the word fits into are not stepped over.
func findSpot(canvas image.Rectangle, size image.Point, occ *occupancy) (image.Rectangle, bool) {
	if size.X > canvas.Dx() || size.Y > canvas.Dy() {
		return image.Rectangle{}, false
	}
	step := max(minSpiralStep, float64(min(size.X, size.Y))/4)
	centre := image.Pt(canvas.Dx()/2, canvas.Dy()/2)
	limit := math.Hypot(float64(canvas.Dx()), float64(canvas.Dy())) / 2
	for t := 0.0; ; {
		radius := step * t / (2 * math.Pi)
		if radius > limit {
			return image.Rectangle{}, false
		}
		x := centre.X + int(radius*math.Cos(t)) - size.X/2
		y := centre.Y + int(radius*math.Sin(t)) - size.Y/2
		r := image.Rect(x, y, x+size.X, y+size.Y)
		if r.In(canvas) && occ.free(r) {
			return r, true
		}
		t += step / max(radius, step)
	}
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG replaces path with img encoded as PNG.
func WritePNG(path string, img image.Image) error {
	return fileutil.ReplaceFile(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}
