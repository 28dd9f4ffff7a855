package image

import (
	"fmt"
	"image"
	"os"

	"github.com/go-imsto/imoptim/utils"
)

// defaults
const (
	DefaultMaxWidth uint    = 1200
	DefaultQuality  Quality = 85
)

// OptimizeOption ...
type OptimizeOption struct {
	MaxWidth uint
	WriteOption
}

func (o OptimizeOption) String() string {
	return fmt.Sprintf("w%d q%d", o.MaxWidth, o.Quality)
}

// OptimizeFile decodes src, bounds its width and writes it to dest as JPEG.
// It returns the attributes of the source and of the written file. On error
// nothing is created at dest unless the encoding itself failed.
func OptimizeFile(src, dest string, opt OptimizeOption) (orig, out *Attr, err error) {
	var in *os.File
	in, err = os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()

	var im *Image
	im, err = Open(in)
	if err != nil {
		return
	}
	orig = im.Attr

	var m image.Image
	m, err = FitWidth(im.m, opt.MaxWidth)
	if err != nil {
		err = fmt.Errorf("resize: %w", err)
		return
	}

	if err = utils.ReadyDir(dest); err != nil {
		return
	}

	var f *os.File
	f, err = os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return
	}
	n, err := SaveTo(f, m, opt.WriteOption)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("encode: %w", err)
		return
	}

	b := m.Bounds()
	out = NewAttr(uint(b.Dx()), uint(b.Dy()), uint8(opt.Quality))
	out.Ext = TypeJPEG.Ext()
	out.Mime = "image/jpeg"
	out.Size = Size(n)
	logger().Debugw("optimized", "src", src, "dest", dest, "orig", orig, "out", out)
	return
}
