// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package wordimage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/tomtom215/listenlog/internal/metrics"
)

// DataURLPrefix precedes the base64 payload of an image data URL.
const DataURLPrefix = "data:image/png;base64,"

// ErrInvalidOptions is returned by New for unusable options.
var ErrInvalidOptions = errors.New("invalid word image options")

// Options controls the canvas and word sizing.
type Options struct {
	Width       int
	Height      int
	MaxFontSize float64
	MinFontSize float64
	MaxWords    int
	Padding     int
	Background  color.Color
}

// DefaultOptions returns a 400x220 black canvas.
func DefaultOptions() Options {
	return Options{
		Width:       400,
		Height:      220,
		MaxFontSize: 48,
		MinFontSize: 10,
		MaxWords:    200,
		Padding:     4,
		Background:  color.Black,
	}
}

func (o *Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.MinFontSize <= 0 || o.MaxFontSize < o.MinFontSize:
		return fmt.Errorf("%w: font sizes %.1f..%.1f", ErrInvalidOptions, o.MinFontSize, o.MaxFontSize)
	case o.Padding < 0 || 2*o.Padding >= o.Width || 2*o.Padding >= o.Height:
		return fmt.Errorf("%w: padding %d", ErrInvalidOptions, o.Padding)
	}
	return nil
}

// Renderer draws word frequency images. It is safe for concurrent use;
// every call builds its own canvas and font faces.
type Renderer struct {
	font *opentype.Font
	opts Options
}

// New parses the embedded font and validates opts.
func New(opts Options) (*Renderer, error) {
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{font: f, opts: opts}, nil
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render draws text and returns the PNG bytes.
func (r *Renderer) Render(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	out, err := r.render(ctx, text)
	metrics.RecordWordImageRender(time.Since(start), err)
	return out, err
}

// DataURL renders text and returns it as a base64 PNG data URL.
func (r *Renderer) DataURL(ctx context.Context, text string) (string, error) {
	b, err := r.Render(ctx, text)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(b), nil
}

// EncodeDataURL wraps PNG bytes in a data URL.
func EncodeDataURL(pngBytes []byte) string {
	return DataURLPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}

func (r *Renderer) render(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)

	words := weigh(tokenize(text), r.opts.MaxWords)
	if len(words) > 0 {
		if err := r.layout(ctx, canvas, words); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// faceCache holds the faces opened during one render.
type faceCache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func (c *faceCache) get(size int) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %d: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		_ = f.Close() //nolint:errcheck // opentype faces never fail to close
	}
}

// layout places words left to right in rows, largest first, and stops when
// the next row would not fit. Words wider than the canvas are shrunk.
func (r *Renderer) layout(ctx context.Context, canvas *image.RGBA, words []weightedWord) error {
	faces := &faceCache{font: r.font, faces: make(map[int]font.Face)}
	defer faces.close()

	pad := r.opts.Padding
	usableWidth := r.opts.Width - 2*pad
	maxCount := words[0].count
	minCount := words[len(words)-1].count

	x, rowTop, rowBaseline, rowBottom := pad, pad, 0, 0
	rowOpen := false

	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return err
		}

		size := r.fontSize(w.count, minCount, maxCount)
		face, width, err := r.fit(faces, w.text, size, usableWidth)
		if err != nil {
			return err
		}
		if face == nil {
			continue
		}
		m := face.Metrics()
		ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

		if rowOpen && x+width > r.opts.Width-pad {
			rowTop = rowBottom + pad
			rowOpen = false
		}
		if !rowOpen {
			if rowTop+ascent+descent > r.opts.Height-pad {
				break
			}
			x = pad
			rowBaseline = rowTop + ascent
			rowBottom = rowBaseline + descent
			rowOpen = true
		}

		d := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(ramp(rankPosition(i, len(words)))),
			Face: face,
			Dot:  fixed.P(x, rowBaseline),
		}
		d.DrawString(w.text)
		x += width + pad
	}
	return nil
}

// fit returns a face for text at size, shrinking until it fits maxWidth.
// A nil face means the word cannot fit at the minimum size.
func (r *Renderer) fit(faces *faceCache, text string, size, maxWidth int) (font.Face, int, error) {
	minSize := int(math.Round(r.opts.MinFontSize))
	for ; size >= minSize; size-- {
		face, err := faces.get(size)
		if err != nil {
			return nil, 0, err
		}
		if width := font.MeasureString(face, text).Ceil(); width <= maxWidth {
			return face, width, nil
		}
	}
	return nil, 0, nil
}

// fontSize scales linearly with count between the configured sizes.
func (r *Renderer) fontSize(count, minCount, maxCount int) int {
	if maxCount == minCount {
		return int(math.Round(r.opts.MaxFontSize))
	}
	rel := float64(count-minCount) / float64(maxCount-minCount)
	return int(math.Round(r.opts.MinFontSize + rel*(r.opts.MaxFontSize-r.opts.MinFontSize)))
}

// rankPosition maps rank i of n onto the color ramp, most frequent brightest.
func rankPosition(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 1 - float64(i)/float64(n-1)
}
