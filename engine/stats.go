package engine

import (
	"fmt"
	"io"
)

type SearchStats struct {
	Nodes        uint64 // main-search nodes
	QNodes       uint64 // quiescence nodes
	TTCuts       uint64 // main-search TT cutoffs
	QTTCuts      uint64 // quiescence TT cutoffs
	NullMoveCuts uint64 // null-move beta cutoffs
	CutNodes     uint64 // beta-cutoff nodes
	PVNodes      uint64 // exact-score nodes
	AllNodes     uint64 // fail-low nodes
	Repetitions  uint64 // threefold draws detected
	Mates        uint64 // terminal nodes (mate or stalemate)
}

func PerC(n uint64, total uint64) string {
	if total == 0 {
		return fmt.Sprintf("%d [-]", n)
	}
	return fmt.Sprintf("%d [%.2f%%]", n, float64(n)/float64(total)*100)
}

func (s *SearchStats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string nodes", s.Nodes, "qnodes", s.QNodes,
		"cuts", PerC(s.CutNodes, s.Nodes), "null-cuts", PerC(s.NullMoveCuts, s.Nodes),
		"pv-nodes", PerC(s.PVNodes, s.Nodes), "all-nodes", PerC(s.AllNodes, s.Nodes))
	fmt.Fprintln(w, "info string tt-cuts", PerC(s.TTCuts, s.Nodes),
		"qtt-cuts", PerC(s.QTTCuts, s.QNodes),
		"repetitions", s.Repetitions, "mates", s.Mates)
}
