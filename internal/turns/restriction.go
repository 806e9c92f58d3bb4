package turns

import "github.com/passbi/streetrouter/internal/graphmodel"

// Index identifies a TurnRestriction within a Table.
type Index int32

// Polarity distinguishes a required turn sequence from a forbidden one.
type Polarity uint8

const (
	// OnlyVia means the listed via-edges are the ONLY legal way to get from
	// From to To; diverging from the sequence is illegal.
	OnlyVia Polarity = iota
	// NoVia means traversing the full sequence From, via..., To is illegal;
	// any divergence is fine.
	NoVia
)

// Restriction is an ordered sequence of edges (from, zero or more via, to)
// plus a polarity.
type Restriction struct {
	From     graphmodel.EdgeIndex
	Via      []graphmodel.EdgeIndex
	To       graphmodel.EdgeIndex
	Polarity Polarity
}

// sequence returns the full edge sequence From, Via..., To.
func (r Restriction) sequence() []graphmodel.EdgeIndex {
	seq := make([]graphmodel.EdgeIndex, 0, len(r.Via)+2)
	seq = append(seq, r.From)
	seq = append(seq, r.Via...)
	seq = append(seq, r.To)
	return seq
}

// Table is the read-only collection of restrictions active over a graph,
// indexed by the edge each restriction begins on so lookups at traversal
// time are O(restrictions starting at this edge) rather than a full scan.
type Table struct {
	restrictions []Restriction
	byFromEdge   map[graphmodel.EdgeIndex][]Index
}

// NewTable builds a restriction lookup table from a flat restriction list.
func NewTable(restrictions []Restriction) *Table {
	byFrom := make(map[graphmodel.EdgeIndex][]Index, len(restrictions))
	for i, r := range restrictions {
		idx := Index(i)
		byFrom[r.From] = append(byFrom[r.From], idx)
	}
	return &Table{restrictions: restrictions, byFromEdge: byFrom}
}

// Get returns the restriction at idx.
func (t *Table) Get(idx Index) Restriction {
	return t.restrictions[idx]
}

// StartingAt returns the indexes of restrictions whose From edge is edge.
func (t *Table) StartingAt(edge graphmodel.EdgeIndex) []Index {
	return t.byFromEdge[edge]
}

// Progress is a predecessor state's mapping from restriction index to the
// count of edges already consumed correctly in that restriction's sequence,
// per spec.md §3: absent (nil/empty) iff not currently mid-restriction.
type Progress map[Index]int

// Equal reports whether two progress maps have identical keys and counts,
// the narrow dominance exception of spec.md §4.3.
func (p Progress) Equal(other Progress) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy safe to mutate independently of p.
func (p Progress) Clone() Progress {
	if len(p) == 0 {
		return nil
	}
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ActivateAt returns the progress map for a search seeded directly onto
// edge (an origin state whose BackEdge is edge, per spec.md §4.5
// "Turn restrictions starting on either seed edge are activated"): every
// restriction whose From edge is edge begins with one edge consumed.
func (t *Table) ActivateAt(edge graphmodel.EdgeIndex) Progress {
	starting := t.StartingAt(edge)
	if len(starting) == 0 {
		return nil
	}
	out := make(Progress, len(starting))
	for _, idx := range starting {
		out[idx] = 1
	}
	return out
}

// Advance updates progress for a move from fromEdge to toEdge, starting any
// restriction whose From edge is fromEdge and continuing any restriction
// already active in progressIn. It returns the updated progress (nil if no
// restriction remains active) and false if the move is illegal: diverging
// from a required (OnlyVia) sequence, or completing a forbidden (NoVia) one.
func (t *Table) Advance(progressIn Progress, fromEdge, toEdge graphmodel.EdgeIndex) (Progress, bool) {
	out := progressIn.Clone()

	for idx, consumed := range progressIn {
		r := t.restrictions[idx]
		seq := r.sequence()
		if consumed >= len(seq) {
			delete(out, idx)
			continue
		}
		if seq[consumed] != toEdge {
			if r.Polarity == OnlyVia {
				return nil, false
			}
			delete(out, idx)
			continue
		}
		consumed++
		if consumed == len(seq) {
			if r.Polarity == NoVia {
				return nil, false
			}
			delete(out, idx)
			continue
		}
		out[idx] = consumed
	}

	for _, idx := range t.StartingAt(fromEdge) {
		if _, already := progressIn[idx]; already {
			continue
		}
		r := t.restrictions[idx]
		seq := r.sequence()
		if len(seq) < 2 || seq[1] != toEdge {
			if r.Polarity == OnlyVia {
				return nil, false
			}
			continue
		}
		if len(seq) == 2 {
			if r.Polarity == NoVia {
				return nil, false
			}
			continue
		}
		if out == nil {
			out = make(Progress, 1)
		}
		out[idx] = 2
	}

	if len(out) == 0 {
		return nil, true
	}
	return out, true
}
