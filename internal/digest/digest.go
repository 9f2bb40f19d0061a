// Package digest provides checksum types.
package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Algorithm describes the digest algorithm.
type Algorithm int

const (
	_ Algorithm = iota
	// MD5 is the md5 algorithm, Conan manifests and snapshots use it.
	MD5
	// SHA256 is the sha256 algorithm.
	SHA256
)

// String returns the textual representation.
func (t Algorithm) String() string {
	switch t {
	case MD5:
		return "md5"
	case SHA256:
		return "sha256"
	default:
		return "undefined"
	}
}

// Digest contains a checksum.
type Digest struct {
	Sum       []byte
	Algorithm Algorithm
}

// String returns '<Algorithm>:<hash>'.
func (d *Digest) String() string {
	return fmt.Sprintf("%s:%s", d.Algorithm, d.Hex())
}

// Hex returns the hexadecimal representation of the checksum, without the
// algorithm prefix.
func (d *Digest) Hex() string {
	return hex.EncodeToString(d.Sum)
}

// FromString converts a "<Algorithm>:<hash>" string to a Digest.
func FromString(in string) (*Digest, error) {
	var algorithm Algorithm

	spl := strings.Split(strings.TrimSpace(in), ":")
	if len(spl) != 2 {
		return nil, errors.New("invalid format, must contain exactly 1 ':'")
	}

	switch a := strings.ToLower(spl[0]); a {
	case "md5":
		if len(spl[1]) != 32 {
			return nil, fmt.Errorf("hash length is %d, expected length 32", len(spl[1]))
		}

		algorithm = MD5
	case "sha256":
		if len(spl[1]) != 64 {
			return nil, fmt.Errorf("hash length is %d, expected length 64", len(spl[1]))
		}

		algorithm = SHA256
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", a)
	}

	sum, err := hex.DecodeString(spl[1])
	if err != nil {
		return nil, fmt.Errorf("converting hash to bytes failed: %w", err)
	}

	return &Digest{
		Algorithm: algorithm,
		Sum:       sum,
	}, nil
}
