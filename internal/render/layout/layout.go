package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns the top-left point that centers a box of the given size
// inside bounds. Integer division; no clamping, so a box larger than
// bounds yields a negative offset.
func Center(size image.Point, bounds image.Rectangle) image.Point {
	bounds = Normalize(bounds)
	return image.Pt(
		bounds.Min.X+(bounds.Dx()-size.X)/2,
		bounds.Min.Y+(bounds.Dy()-size.Y)/2,
	)
}

// FitRect returns the largest rectangle with src's aspect ratio that fits
// inside dst, centered. An empty src yields the zero rectangle.
func FitRect(src, dst image.Rectangle) image.Rectangle {
	src = Normalize(src)
	dst = Normalize(dst)
	if src.Dx() == 0 || src.Dy() == 0 {
		return image.Rectangle{}
	}
	width := dst.Dx()
	height := width * src.Dy() / src.Dx()
	if height > dst.Dy() {
		height = dst.Dy()
		width = height * src.Dx() / src.Dy()
	}
	min := Center(image.Pt(width, height), dst)
	return image.Rect(min.X, min.Y, min.X+width, min.Y+height)
}
