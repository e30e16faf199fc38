// Command viewer plays a captured clockcast stream back onto the Linux
// framebuffer:
//
//	clockcast < params.json | viewer
//
// It reads length-prefixed PNG frames from stdin until EOF and blits each
// one aspect-fit onto the framebuffer device.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/clockcast/clockcast/internal/render/layout"
	"github.com/clockcast/clockcast/internal/stream"
	"github.com/clockcast/clockcast/internal/system"
)

func main() {
	device := flag.String("device", "/dev/fb0", "framebuffer device to draw on")
	textMode := flag.Bool("no-graphics-mode", false, "leave the console in text mode")
	flag.Parse()

	dev, err := fb.Open(*device)
	if err != nil {
		fmt.Fprintln(os.Stderr, "framebuffer open error:", err)
		os.Exit(2)
	}
	defer dev.Close()

	if !*textMode {
		if err := system.SetGraphicsMode(); err != nil {
			fmt.Fprintln(os.Stderr, "graphics mode:", err)
		}
		_ = system.HideCursor()
		defer func() {
			_ = system.ShowCursor()
			_ = system.RestoreTextMode()
		}()
	}

	if err := play(os.Stdin, dev); err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}

// play blits every frame of the stream onto dst until a clean EOF.
func play(r io.Reader, dst draw.Image) error {
	in := bufio.NewReader(r)
	var target image.Rectangle
	for {
		payload, err := stream.ReadFrame(in)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		frame, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("decode frame: %w", err)
		}
		if target.Empty() {
			target = layout.FitRect(frame.Bounds(), dst.Bounds())
			draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		}
		xdraw.NearestNeighbor.Scale(dst, target, frame, frame.Bounds(), xdraw.Src, nil)
	}
}
