package engine

import (
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"
)

// PrincipalVariation is the best line found at an exact-score node. A
// node's line is its chosen move followed by the child's line; update
// copies, so sibling subtrees never alias each other's storage.
type PrincipalVariation []dragon.Move

func (pv *PrincipalVariation) update(m dragon.Move, child PrincipalVariation) {
	*pv = append((*pv)[:0], m)
	*pv = append(*pv, child...)
}

func (pv *PrincipalVariation) clear() {
	*pv = (*pv)[:0]
}

func (pv PrincipalVariation) String() string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = moveString(m)
	}
	return strings.Join(parts, " ")
}
