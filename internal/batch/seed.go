package batch

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// DeriveSeed maps (base seed, question index, attempt) to a stable int64
// seed. Each question gets its own random stream, so a run is reproducible
// for a fixed base seed no matter how the scheduler interleaves workers,
// and each retry re-rolls with a fresh stream instead of replaying the
// failed one.
func DeriveSeed(base int64, index, attempt int) int64 {
	h := sha256.Sum256(fmt.Appendf(nil, "%d|%d|%d", base, index, attempt))
	v := int64(binary.LittleEndian.Uint64(h[:8]))
	if v < 0 {
		v = -v
	}
	return v
}
