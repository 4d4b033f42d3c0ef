package core

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint is the dedup identity of a cleaned row.
type Fingerprint [sha256.Size]byte

// RowFingerprint digests the ordered (column, value) pairs of row. Every
// name and value is length-prefixed so that no two distinct rows share an
// encoding. Columns past the end of row count as empty values.
func RowFingerprint(header, row []string) Fingerprint {
	h := sha256.New()
	var n [binary.MaxVarintLen64]byte
	write := func(s string) {
		h.Write(n[:binary.PutUvarint(n[:], uint64(len(s)))])
		h.Write([]byte(s))
	}

	for i, name := range header {
		write(name)
		if i < len(row) {
			write(row[i])
		} else {
			write("")
		}
	}

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}
