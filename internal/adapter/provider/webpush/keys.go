package webpush

import (
	"bytes"
	"crypto/ecdh"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// decodeKey accepts base64 in any of the URL/standard, padded/raw forms
// that browsers and key generators emit.
func decodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.StdEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, errors.New("invalid base64 key")
}

// normalizeVAPIDKeys checks the application server key pair at startup and
// returns both keys as raw base64url. The private key is the 32-byte P-256
// scalar, the public key the 65-byte uncompressed point; an empty public
// key is derived from the private one.
func normalizeVAPIDKeys(publicKey, privateKey string) (string, string, error) {
	d, err := decodeKey(privateKey)
	if err != nil {
		return "", "", fmt.Errorf("vapid private key: %w", err)
	}
	key, err := ecdh.P256().NewPrivateKey(d)
	if err != nil {
		return "", "", fmt.Errorf("vapid private key: %w", err)
	}

	pub := key.PublicKey().Bytes()
	if publicKey != "" {
		configured, err := decodeKey(publicKey)
		if err != nil {
			return "", "", fmt.Errorf("vapid public key: %w", err)
		}
		if !bytes.Equal(configured, pub) {
			return "", "", errors.New("vapid public key does not match private key")
		}
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(pub), enc.EncodeToString(d), nil
}
