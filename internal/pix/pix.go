// Package pix maps contribution-amount tiers to PIX "copia e cola"
// codes and builds QR image URLs. Codes come from deployment
// configuration; QR rendering is delegated to a third-party image
// service, never generated locally.
package pix

import (
	"net/url"
	"strings"
)

// PlaceholderPrefix marks codes the deployment has not filled in yet;
// such codes are reported as not configured rather than rendered.
const PlaceholderPrefix = "PIX_PLACEHOLDER"

const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// Config is an immutable amount→code table.
type Config struct {
	codes map[int]string
}

func NewConfig(codes map[int]string) Config {
	cp := make(map[int]string, len(codes))
	for k, v := range codes {
		cp[k] = v
	}
	return Config{codes: cp}
}

// Code returns the configured code for amount, or "".
func (c Config) Code(amount int) string { return c.codes[amount] }

// Has reports whether a usable code exists for amount: non-empty and
// not a reserved placeholder.
func (c Config) Has(amount int) bool {
	code := c.codes[amount]
	return code != "" && !strings.HasPrefix(code, PlaceholderPrefix)
}

// QRImageURL is the third-party QR image for a payment code.
func QRImageURL(code string) string {
	q := url.Values{}
	q.Set("size", "200x200")
	q.Set("data", code)
	return qrEndpoint + "?" + q.Encode()
}
