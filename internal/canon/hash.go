package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes keep digests of different record kinds apart.
// The version suffix allows the encoding to change later.
const (
	DomainReport = "stairrank/report/v1"
	DomainGrid   = "stairrank/grid/v1"
)

// Digest returns SHA256(domain + 0x00 + data) as lowercase hex.
func Digest(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DigestOf canonically marshals v and digests it under domain.
func DigestOf(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("DigestOf: failed to marshal: %w", err)
	}
	return Digest(domain, data), nil
}
