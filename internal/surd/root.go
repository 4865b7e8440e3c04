package surd

import (
	"fmt"
	"math/big"
)

// selectRoot returns the smallest r >= 1 with m < threshold^r, the minimal
// depth whose r-th root of m falls below the display threshold. The search
// is bounded: every m < 2^k satisfies the condition at r = k+1 for any
// threshold >= 2, so exhaustion only signals a misconfigured threshold.
func selectRoot(m *big.Int, threshold int64) (int, error) {
	if threshold < 2 {
		return 0, fmt.Errorf("%w: threshold %d below 2", ErrRootSearchExhausted, threshold)
	}

	bound := m.BitLen() + 1
	t := big.NewInt(threshold)
	pow := big.NewInt(threshold)

	for r := 1; r <= bound; r++ {
		if m.Cmp(pow) < 0 {
			return r, nil
		}
		pow.Mul(pow, t)
	}

	return 0, fmt.Errorf("%w: no depth up to %d under threshold %d", ErrRootSearchExhausted, bound, threshold)
}
