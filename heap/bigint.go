package heap

import (
	"fmt"
	"math/big"

	"github.com/heapkit/heapkit/kind"
)

// BigIntData backs kind.BigInt, used for magnitudes too large for
// value.InlineBigInt's 7-byte budget.
type BigIntData struct {
	V *big.Int
}

func traceBigInt(kind.Store, kind.Index, kind.Visitor) {
	// BigInts hold no outgoing references.
}

func debugBigInt(store kind.Store, idx kind.Index) string {
	rec := storeVector[BigIntData](store).Get(idx)
	return fmt.Sprintf("BigInt#%d(%s)", idx, rec.V.String())
}

func init() {
	kind.Register(kind.BigInt, kind.Funcs{Trace: traceBigInt, DebugPrint: debugBigInt})
}
