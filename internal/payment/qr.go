package payment

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 300

// QRCodeDataURL renders the SPD payment string for the given transfer as a
// 300px PNG and returns it as a base64 data URL ready for an <img> tag or an
// inline email attachment.
func QRCodeDataURL(accountNumber string, amount int, variableSymbol, message string) (string, error) {
	spd, err := SPDString(accountNumber, amount, variableSymbol, message)
	if err != nil {
		return "", err
	}

	q, err := qrcode.New(spd, qrcode.High)
	if err != nil {
		return "", fmt.Errorf("payment: failed to encode QR code: %w", err)
	}

	// The module grid rarely lands on the target size exactly, so render
	// slightly large and downscale with nearest neighbour to keep the
	// modules crisp.
	img := imaging.Resize(q.Image(qrSize+qrSize/2), qrSize, qrSize, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("payment: failed to render QR PNG: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
