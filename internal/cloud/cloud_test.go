package cloud_test

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"hixminer/internal/cloud"
	"hixminer/internal/textmine"
)

func sampleWords() []textmine.WordCount {
	return []textmine.WordCount{
		{Word: "pijn", Count: 12},
		{Word: "onrust", Count: 7},
		{Word: "slaapt", Count: 4},
		{Word: "goed", Count: 2},
		{Word: "koorts", Count: 1},
	}
}

func TestLayoutPlacesWordsWithoutOverlap(t *testing.T) {
	r := cloud.New(cloud.Options{Width: 400, Height: 300})
	placements, err := r.Layout(sampleWords())
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if len(placements) != 5 {
		t.Fatalf("expected 5 placements, got %d", len(placements))
	}
	canvas := image.Rect(0, 0, 400, 300)
	for i, p := range placements {
		if !p.Bounds.In(canvas) {
			t.Fatalf("%q placed outside canvas: %v", p.Word, p.Bounds)
		}
		for _, other := range placements[i+1:] {
			if p.Bounds.Overlaps(other.Bounds) {
				t.Fatalf("%q overlaps %q", p.Word, other.Word)
			}
		}
	}
	if placements[0].Word != "pijn" || placements[0].Scale <= placements[4].Scale {
		t.Fatalf("expected most frequent word to be largest: %+v", placements)
	}
}

func TestLayoutHonoursMaxWords(t *testing.T) {
	r := cloud.New(cloud.Options{Width: 400, Height: 400, MaxWords: 2})
	placements, err := r.Layout(sampleWords())
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	r := cloud.New(cloud.Options{Width: 300, Height: 300})
	first, err := r.Layout(sampleWords())
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Layout(sampleWords())
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i].Bounds != second[i].Bounds {
			t.Fatalf("layout differs at %d: %v vs %v", i, first[i].Bounds, second[i].Bounds)
		}
	}
}

func TestLayoutFillsCanvasWithEqualWords(t *testing.T) {
	words := make([]textmine.WordCount, 500)
	for i := range words {
		words[i] = textmine.WordCount{Word: fmt.Sprintf("w%03d", i), Count: 3}
	}
	placements, err := cloud.New(cloud.Options{}).Layout(words)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if len(placements) < 450 {
		t.Fatalf("expected at least 450 of 500 words placed, got %d", len(placements))
	}
	for i, p := range placements {
		if p.Scale != placements[0].Scale {
			t.Fatalf("equal counts should share a size: %q has scale %d, %q has %d",
				p.Word, p.Scale, placements[0].Word, placements[0].Scale)
		}
		for _, other := range placements[i+1:] {
			if p.Bounds.Overlaps(other.Bounds) {
				t.Fatalf("%q overlaps %q", p.Word, other.Word)
			}
		}
	}
}

func TestLayoutSkipsWordsThatDoNotFit(t *testing.T) {
	r := cloud.New(cloud.Options{Width: 120, Height: 60})
	placements, err := r.Layout([]textmine.WordCount{
		{Word: "hartritmestoornissen-bij-inspanning", Count: 5},
		{Word: "pijn", Count: 2},
		{Word: "koorts", Count: 1},
	})
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	var got []string
	for _, p := range placements {
		got = append(got, p.Word)
	}
	if len(got) != 2 || got[0] != "pijn" || got[1] != "koorts" {
		t.Fatalf("expected the oversized word to be skipped, got %v", got)
	}
}

func TestLayoutSizesNeverGrowDownTheList(t *testing.T) {
	words := make([]textmine.WordCount, 120)
	for i := range words {
		words[i] = textmine.WordCount{Word: fmt.Sprintf("woord%d", i), Count: 1000 / (i + 1)}
	}
	placements, err := cloud.New(cloud.Options{Width: 600, Height: 600}).Layout(words)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if len(placements) < 100 {
		t.Fatalf("expected most words placed, got %d of %d", len(placements), len(words))
	}
	for i := 1; i < len(placements); i++ {
		if placements[i].Scale > placements[i-1].Scale {
			t.Fatalf("%q (scale %d) is larger than %q (scale %d)",
				placements[i].Word, placements[i].Scale, placements[i-1].Word, placements[i-1].Scale)
		}
	}
}

func TestRenderEmptyCorpus(t *testing.T) {
	r := cloud.New(cloud.Options{})
	if _, err := r.Render(nil); !errors.Is(err, textmine.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
	if _, err := r.Render([]textmine.WordCount{{Word: "", Count: 3}}); !errors.Is(err, textmine.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus for blank words, got %v", err)
	}
}

func TestRenderDrawsOnBackground(t *testing.T) {
	r := cloud.New(cloud.Options{Width: 200, Height: 120, Background: color.Black})
	img, err := r.Render(sampleWords())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 120) {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("expected black corner, got %v", got)
	}
	inked := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			if c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); c.R|c.G|c.B != 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatal("expected words to be drawn")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := cloud.New(cloud.Options{Width: 100, Height: 100}).Render(sampleWords())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "cloud.png")
	if err := cloud.WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if decoded.Bounds().Dx() != 100 {
		t.Fatalf("unexpected width %d", decoded.Bounds().Dx())
	}
}
