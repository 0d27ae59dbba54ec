package raster

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// DefaultJPEGQuality is the quality used unless SetQuality says otherwise.
const DefaultJPEGQuality = 92

func encode(w io.Writer, img image.Image, f Format, quality int) error {
	if f == JPEG {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	return png.Encode(w, img)
}
