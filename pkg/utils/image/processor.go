package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
)

const (
	// MaxDimension caps the longest side of an uploaded photo.
	MaxDimension = 4096
	// MaxInputBytes bounds how much of the upload is read.
	MaxInputBytes = 10 * 1024 * 1024 // 10MB
)

// Processed is a re-encoded image ready to be uploaded.
type Processed struct {
	Body        *bytes.Buffer
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// ProcessImage decodes src and re-encodes it, dropping metadata. JPEG and PNG
// keep their format; WEBP is re-encoded lossy at the same quality as JPEG.
func ProcessImage(src io.Reader) (*Processed, error) {
	data, err := io.ReadAll(io.LimitReader(src, MaxInputBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read image: %w", err)
	}
	if len(data) > MaxInputBytes {
		return nil, fmt.Errorf("image is larger than %d bytes", MaxInputBytes)
	}

	// Önce sadece başlığı oku, boyut kontrolü için tüm resmi açmaya gerek yok
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, fmt.Errorf("image is %dx%d, max side is %d", cfg.Width, cfg.Height, MaxDimension)
	}

	// Resmi decode et
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	bounds := img.Bounds()

	buf := new(bytes.Buffer)
	ext := "." + format

	// Resmi optimize et ve encode et
	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
		ext = ".jpg"
	case "png":
		err = png.Encode(buf, img)
	case "webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85})
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("could not encode image: %w", err)
	}

	return &Processed{
		Body:        buf,
		ContentType: fmt.Sprintf("image/%s", format),
		Extension:   ext,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}
