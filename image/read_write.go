package image

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded picture with its attributes
type Image struct {
	m image.Image
	*Attr
}

// Decoded returns the pixels
func (im *Image) Decoded() image.Image {
	return im.m
}

type lener interface {
	Len() int
}

type stater interface {
	Stat() (os.FileInfo, error)
}

// Open sniffs and decodes an image from r
func Open(r io.Reader) (*Image, error) {
	var size Size
	if f, ok := r.(stater); ok {
		if fi, err := f.Stat(); err == nil {
			size = Size(fi.Size())
		}
	} else if rr, ok := r.(lener); ok {
		size = Size(rr.Len())
	}

	rr := asReader(r)
	t, err := GuessType(rr)
	if err != nil {
		return nil, err
	}
	if t == TypeNone {
		return nil, ErrorFormat
	}

	m, format, err := image.Decode(rr)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", t, err)
	}
	logger().Debugw("decoded", "type", t, "format", format, "bounds", m.Bounds())

	b := m.Bounds()
	attr := NewAttr(uint(b.Dx()), uint(b.Dy()), 0)
	attr.Ext = t.Ext()
	attr.Mime = mime.TypeByExtension(attr.Ext)
	attr.Size = size

	return &Image{m: m, Attr: attr}, nil
}

// OpenFile ...
func OpenFile(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Open(f)
}

// WriteOption for the JPEG encoder
type WriteOption struct {
	Quality Quality
}

// SaveTo encodes m as JPEG into w, returns the count of bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	cw := &CountWriter{}
	err := jpeg.Encode(io.MultiWriter(w, cw), flatten(m), &jpeg.Options{
		Quality: int(opt.Quality),
	})
	if err != nil {
		return 0, err
	}
	return cw.Len(), nil
}

type opaquer interface {
	Opaque() bool
}

// flatten composes m over a white background when it has transparency
func flatten(m image.Image) image.Image {
	if o, ok := m.(opaquer); ok && o.Opaque() {
		return m
	}
	b := m.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, m, image.Pt(0, 0), 1.0)
}
