package plain

import (
	"fmt"
	"sync/atomic"
)

// Op identifies one primitive of the encrypted byte interface
type Op int

const (
	OpTrivial Op = iota
	OpEncrypt
	OpEqual
	OpSelect
	OpXor
	OpMulConst
	OpShiftLeft
	OpShiftRight
	OpAndConst
	numOps
)

var opNames = [numOps]string{
	"Trivial", "Encrypt", "Equal", "Select", "Xor", "MulConst", "ShiftLeft", "ShiftRight", "AndConst",
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Counter counts primitives, safe for concurrent use
type Counter struct {
	ops [numOps]atomic.Uint64
}

func (c *Counter) inc(op Op) {
	c.ops[op].Add(1)
}

// Count returns how many times op was issued since the last Reset
func (c *Counter) Count(op Op) uint64 {
	return c.ops[op].Load()
}

// Snapshot returns the non-zero counts
func (c *Counter) Snapshot() map[Op]uint64 {
	snap := make(map[Op]uint64)
	for op := Op(0); op < numOps; op++ {
		if n := c.ops[op].Load(); n != 0 {
			snap[op] = n
		}
	}
	return snap
}

func (c *Counter) Reset() {
	for op := range c.ops {
		c.ops[op].Store(0)
	}
}
