package visualize

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
)

const (
	cellWidth  = 2 // pixels per time frame
	cellHeight = 6 // pixels per coefficient row
	panelGap   = 8 // pixels between stacked panels
)

// RenderParams draws the MFCC, delta-1 and delta-2 matrices as three
// vertically stacked time-indexed heatmaps and writes the result as a
// single PNG. Each panel is scaled to its own value range, with low
// coefficient indices at the top.
func RenderParams(p *mfcc.Params, w io.Writer) error {
	if p == nil || p.Coefficients() == 0 || p.Frames() == 0 {
		return fmt.Errorf("nothing to render: empty parametrization")
	}

	matrices := [][][]float64{p.MFCC, p.Delta1, p.Delta2}

	width := p.Frames() * cellWidth
	panelHeight := p.Coefficients() * cellHeight
	height := len(matrices)*panelHeight + (len(matrices)-1)*panelGap

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	top := 0
	for _, matrix := range matrices {
		drawPanel(img, matrix, top)
		top += panelHeight + panelGap
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode heatmap: %w", err)
	}
	return nil
}

// WriteParamsPNG renders the parametrization to a PNG file at path.
func WriteParamsPNG(p *mfcc.Params, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create heatmap file: %w", err)
	}
	defer f.Close()

	if err := RenderParams(p, f); err != nil {
		return err
	}
	return f.Close()
}

func drawPanel(img *image.RGBA, matrix [][]float64, top int) {
	lo, hi := valueRange(matrix)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for c, row := range matrix {
		for t, v := range row {
			col := heatColor((v - lo) / span)
			for dy := range cellHeight {
				for dx := range cellWidth {
					img.Set(t*cellWidth+dx, top+c*cellHeight+dy, col)
				}
			}
		}
	}
}

func valueRange(matrix [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range matrix {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// heatColor maps a normalized value in [0, 1] onto a blue-white-red
// diverging scale.
func heatColor(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))
	if v < 0.5 {
		// blue -> white
		f := v * 2
		return color.RGBA{
			R: uint8(255 * f),
			G: uint8(255 * f),
			B: 255,
			A: 255,
		}
	}
	// white -> red
	f := (v - 0.5) * 2
	return color.RGBA{
		R: 255,
		G: uint8(255 * (1 - f)),
		B: uint8(255 * (1 - f)),
		A: 255,
	}
}
