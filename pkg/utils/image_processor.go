package utils

import (
	"bytes"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"mime/multipart"

	"titoubarz-backend/pkg/logger"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ProcessedImage is the normalized output ready for upload.
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// ProcessImage resizes oversized uploads and re-encodes them as WebP,
// falling back to JPEG when the WebP encoder rejects the image.
func ProcessImage(file multipart.File, filename string) (*ProcessedImage, error) {
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", filename).Str("format", format).Msg("Processing image")

	// Max width 2000px, aspect ratio preserved.
	bounds := img.Bounds()
	if bounds.Dx() > 2000 {
		img = imaging.Resize(img, 2000, 0, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	contentType := "image/webp"

	err = webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  85,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("WebP encoding failed, falling back to JPEG")
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, err
		}
		contentType = "image/jpeg"
	}

	return &ProcessedImage{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// IsImage verifies simple content type
func IsImage(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png" || contentType == "image/webp" || contentType == "image/jpg"
}
