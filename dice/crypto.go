package dice

import (
	"crypto/rand"
	"encoding/binary"
)

// CryptoSource is a math/rand.Source that reads from crypto/rand, for games
// where rolls shouldn't be predictable. Seed is a no-op.
type CryptoSource struct{}

func (CryptoSource) Int63() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}

func (CryptoSource) Seed(int64) {}
