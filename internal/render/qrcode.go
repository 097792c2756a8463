package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRSizePx = 256

// QRImage returns a QR code for payload, or (nil, nil) for an empty one.
// Level Q: the code is scanned off a glowing panel across a room, so spend
// extra modules on error correction.
func QRImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRSizePx
	}
	code, err := qrcode.New(payload, qrcode.High)
	if err != nil {
		return nil, err
	}
	return code.Image(sizePx), nil
}
