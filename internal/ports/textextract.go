package ports

import "context"

// TextExtractor turns an image into text (OCR).
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, contentType string) (string, error)
}
