package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

const (
	minImageSize     = 128
	maxImageSize     = 1024
	defaultImageSize = 256
)

// RenderPNG rasterizes an encoded payload for clients that display the
// code outside the app (till screens, printed stickers). Size is clamped
// to a sane range.
func RenderPNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultImageSize
	}
	if size < minImageSize {
		size = minImageSize
	}
	if size > maxImageSize {
		size = maxImageSize
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}
