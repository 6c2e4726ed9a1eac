package frontier

import (
	"math/bits"

	"github.com/katalvlaran/cartroute/distmat"
)

// hashRotate is the per-byte left rotation of the mixing step.
const hashRotate = 5

// Hash folds the node identity bytes into a 64-bit state: each byte is
// XOR-ed in, then the state is rotated left by 5 bits. It needs no lookup
// tables and only byte-wide XOR and rotate, so it is cheap on 8-bit targets.
// It is not collision resistant and must not be used outside the frontier.
func Hash(n distmat.Node) uint64 {
	return foldBytes(0, n.Index, n.Slot)
}

func foldBytes(state uint64, bs ...uint8) uint64 {
	for _, b := range bs {
		state ^= uint64(b)
		state = bits.RotateLeft64(state, hashRotate)
	}

	return state
}
