// Package md5 computes md5 digests, the checksum format of Conan manifests.
package md5

//nolint:gosec // md5 is the checksum format of the Conan v1 protocol
import (
	"crypto/md5"
	"fmt"
	"io"
	"os"

	"github.com/bfgroup/barbarian/internal/digest"
)

// File returns the MD5 digest of the file.
func File(path string) (*digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file failed: %w", err)
	}

	defer f.Close()

	h := md5.New() //nolint:gosec
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("reading file failed: %w", err)
	}

	return &digest.Digest{
		Algorithm: digest.MD5,
		Sum:       h.Sum(nil),
	}, nil
}

// Sum returns the MD5 digest of b.
func Sum(b []byte) *digest.Digest {
	sum := md5.Sum(b) //nolint:gosec

	return &digest.Digest{
		Algorithm: digest.MD5,
		Sum:       sum[:],
	}
}
