package image

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// FitSize bounds ow x oh to maxWidth, keeping the aspect ratio. The height
// is floored, so it is zero for strips too thin to scale. Narrower sizes are
// not upscaled.
func FitSize(ow, oh, maxWidth uint) (uint, uint) {
	if maxWidth == 0 || ow <= maxWidth {
		return ow, oh
	}
	return maxWidth, uint(uint64(oh) * uint64(maxWidth) / uint64(ow))
}

// FitWidth resamples img with Lanczos3 when it is wider than maxWidth
func FitWidth(img image.Image, maxWidth uint) (image.Image, error) {
	ob := img.Bounds()
	ow, oh := uint(ob.Dx()), uint(ob.Dy())
	w, h := FitSize(ow, oh, maxWidth)
	if w == ow && h == oh {
		return img, nil
	}
	if h == 0 {
		return nil, fmt.Errorf("%w: %dx%d to width %d", ErrZeroHeight, ow, oh, w)
	}
	logger().Debugw("resize", "from", ob.Size(), "width", w, "height", h)
	return resize.Resize(w, h, img, resize.Lanczos3), nil
}
