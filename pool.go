package unparen

import (
	"sync"

	"github.com/csfmt/unparen/syntax"
)

// nodeStackPool holds traversal stacks for the interpolation scan.
var nodeStackPool = sync.Pool{
	New: func() any {
		s := make([]syntax.Node, 0, 32)
		return &s
	},
}

// getNodeStack returns an empty stack and a put function that clears it
// and returns it to the pool.
func getNodeStack() (*[]syntax.Node, func()) {
	p := nodeStackPool.Get().(*[]syntax.Node)
	clear(*p)
	*p = (*p)[:0]
	return p, func() {
		clear(*p)
		*p = (*p)[:0]
		nodeStackPool.Put(p)
	}
}
