package runfile

import "sort"

type Candidate struct {
	DocID string
	Rank  int
}

// Run holds candidate documents per query in the order they appear in the
// run file. Queries also keep file order.
type Run struct {
	order      []int
	candidates map[int][]Candidate
}

func newRun() *Run {
	return &Run{candidates: make(map[int][]Candidate)}
}

func (r *Run) add(queryID int, c Candidate) {
	if _, ok := r.candidates[queryID]; !ok {
		r.order = append(r.order, queryID)
	}
	r.candidates[queryID] = append(r.candidates[queryID], c)
}

func (r *Run) QueryIDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Run) Candidates(queryID int) []Candidate {
	return r.candidates[queryID]
}

func (r *Run) DocIDs(queryID int) []string {
	cs := r.candidates[queryID]
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.DocID)
	}
	return ids
}

// Len returns the number of queries.
func (r *Run) Len() int {
	return len(r.order)
}

// Size returns the number of candidate entries across all queries.
func (r *Run) Size() int {
	n := 0
	for _, cs := range r.candidates {
		n += len(cs)
	}
	return n
}

// SortByRank reorders each query's candidates by ascending rank. Ties keep
// file order. Loading never sorts on its own.
func (r *Run) SortByRank() {
	for _, cs := range r.candidates {
		sort.SliceStable(cs, func(i, j int) bool {
			return cs[i].Rank < cs[j].Rank
		})
	}
}
