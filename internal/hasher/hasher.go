// Package hasher provides short content digests for change detection and
// file inspection output.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen characters (0 keeps the full 16).
func ContentHash(data []byte, hexLen int) string {
	return truncate(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(h.Sum64(), hexLen), nil
}

// HashFile computes the full xxHash64 hex digest of the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ContentHashReader(f, 0)
}

func truncate(v uint64, hexLen int) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	full := hex.EncodeToString(b)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
