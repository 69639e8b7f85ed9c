package engine

import "sort"

// Paginator is the section-pagination state machine: one state per section
// index, guarded transitions, no terminal state. The answer-validity guard
// on forward navigation belongs to the Controller; the machine itself only
// enforces range and back-navigation rules, keeping the current index in
// range and inside the visited set at all times.
type Paginator struct {
	current   int
	total     int
	visited   map[int]struct{}
	allowBack bool
}

// NewPaginator starts at section 0 with {0} visited. total is clamped to a
// minimum of one section so the range invariant holds even for degenerate
// configs.
func NewPaginator(total int, allowBack bool) *Paginator {
	if total < 1 {
		total = 1
	}
	return &Paginator{
		total:     total,
		visited:   map[int]struct{}{0: {}},
		allowBack: allowBack,
	}
}

// Current returns the current section index.
func (p *Paginator) Current() int { return p.current }

// Total returns the section count.
func (p *Paginator) Total() int { return p.total }

// IsFirst reports whether the current section is the first.
func (p *Paginator) IsFirst() bool { return p.current == 0 }

// IsLast reports whether the current section is the last.
func (p *Paginator) IsLast() bool { return p.current == p.total-1 }

// AllowsBack reports whether backward navigation is enabled for the session.
func (p *Paginator) AllowsBack() bool { return p.allowBack }

// HasVisited reports whether the index has ever been current.
func (p *Paginator) HasVisited(index int) bool {
	_, ok := p.visited[index]
	return ok
}

// Visited returns the visited indices in ascending order.
func (p *Paginator) Visited() []int {
	out := make([]int, 0, len(p.visited))
	for idx := range p.visited {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Next advances by exactly one section, clamped at the last. Returns whether
// the index moved. Callers gate this on section validity.
func (p *Paginator) Next() bool {
	if p.IsLast() {
		return false
	}
	p.current++
	p.visited[p.current] = struct{}{}
	return true
}

// Previous steps back one section. It is a no-op unless back navigation is
// allowed and the machine is past the first section. The visited set is not
// altered.
func (p *Paginator) Previous() bool {
	if !p.allowBack || p.current == 0 {
		return false
	}
	p.current--
	return true
}

// GoTo jumps directly to an index, marking it visited without requiring
// prior visitation. Used for error navigation and resumed-session
// restoration; UI-level click navigation adds a visited-set guard on top
// (see Controller.SelectSection). Out-of-range jumps are rejected.
func (p *Paginator) GoTo(index int) bool {
	if index < 0 || index >= p.total {
		return false
	}
	p.current = index
	p.visited[index] = struct{}{}
	return true
}
