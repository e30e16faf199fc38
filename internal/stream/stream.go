// Package stream frames encoded canvases for a byte-oriented consumer.
//
// The wire unit is [4-byte big-endian unsigned length N][N bytes of PNG].
// There is no trailer; a consumer detects completion by EOF.
package stream

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"
)

const headerSize = 4

// FrameWriter consumes rendered canvases.
type FrameWriter interface {
	Emit(img image.Image) error
}

// Emitter encodes each canvas to PNG and writes it as one length-prefixed
// frame, flushing before returning. The output cursor only ever advances;
// any write error means the stream is unrecoverable and must be abandoned.
type Emitter struct {
	w *bufio.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

func (e *Emitter) Emit(img image.Image) error {
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return err
	}

	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[:], uint32(encoded.Len()))
	if _, err := e.w.Write(header[:]); err != nil {
		return err
	}
	if _, err := e.w.Write(encoded.Bytes()); err != nil {
		return err
	}
	return e.w.Flush()
}

// ReadFrame reads one frame payload, the inverse of Emit. It returns
// io.EOF at a clean frame boundary and io.ErrUnexpectedEOF when the stream
// ends inside a header or payload.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	payload := make([]byte, binary.BigEndian.Uint32(header[:]))
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}
