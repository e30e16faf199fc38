package main

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/clockcast/clockcast/internal/stream"
)

func frameWithLine(row int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, 128, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			canvas.SetRGBA(x, y, color.RGBA{A: 0xFF})
		}
	}
	for x := 0; x < 128; x++ {
		canvas.SetRGBA(x, row, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	}
	return canvas
}

func TestPlayBlitsStream(t *testing.T) {
	var captured bytes.Buffer
	emitter := stream.NewEmitter(&captured)
	for i := 0; i < 3; i++ {
		if err := emitter.Emit(frameWithLine(32)); err != nil {
			t.Fatalf("emit: %v", err)
		}
	}

	panel := image.NewRGBA(image.Rect(0, 0, 256, 128))
	if err := play(&captured, panel); err != nil {
		t.Fatalf("play: %v", err)
	}

	// 128x64 scales 2x onto the 256x128 panel; the line at source row 32
	// lands on panel row 64.
	if got := panel.RGBAAt(10, 64); got.R != 0xFF {
		t.Errorf("expected white at (10,64), got %v", got)
	}
	if got := panel.RGBAAt(10, 0); got.R != 0 {
		t.Errorf("expected black at (10,0), got %v", got)
	}
}

func TestPlayTruncatedStream(t *testing.T) {
	var captured bytes.Buffer
	if err := stream.NewEmitter(&captured).Emit(frameWithLine(0)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	truncated := captured.Bytes()[:captured.Len()-5]

	panel := image.NewRGBA(image.Rect(0, 0, 64, 32))
	if err := play(bytes.NewReader(truncated), panel); err != io.ErrUnexpectedEOF {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
