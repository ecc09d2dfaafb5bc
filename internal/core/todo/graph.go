package todo

import "errors"

// Graph is the dependency graph over a list's items. Edges point from an
// item to the items it depends on. Node order follows the source document.
type Graph struct {
	items []Item
	index map[string]int
	edges map[string][]string
}

// NewGraph builds the graph and verifies every dependency reference points
// at an item in the list. All dangling references are collected, in
// document order, and returned as a single joined error.
func NewGraph(list *List) (*Graph, error) {
	g := &Graph{
		items: list.Todos,
		index: make(map[string]int, len(list.Todos)),
		edges: make(map[string][]string, len(list.Todos)),
	}
	for i, item := range list.Todos {
		if _, seen := g.index[item.ID]; !seen {
			g.index[item.ID] = i
		}
	}
	var missing []error
	for _, item := range list.Todos {
		for _, dep := range item.Dependencies {
			if _, ok := g.index[dep]; !ok {
				missing = append(missing, &MissingDependencyError{ItemID: item.ID, DependencyID: dep})
				continue
			}
			g.edges[item.ID] = append(g.edges[item.ID], dep)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return g, nil
}

const (
	colorWhite = iota
	colorGray
	colorBlack
)

// DetectCycle runs a three-color depth-first search over the graph in
// document order and returns the first cycle found, or nil. The reported
// path starts and ends at the same id.
func (g *Graph) DetectCycle() *CycleError {
	color := make(map[string]int, len(g.items))
	var stack []string

	var visit func(id string) *CycleError
	visit = func(id string) *CycleError {
		color[id] = colorGray
		stack = append(stack, id)
		for _, dep := range g.edges[id] {
			switch color[dep] {
			case colorGray:
				// Cycle: slice the stack from the first occurrence of dep.
				start := 0
				for i, s := range stack {
					if s == dep {
						start = i
						break
					}
				}
				path := append(append([]string{}, stack[start:]...), dep)
				return &CycleError{Path: path}
			case colorWhite:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = colorBlack
		return nil
	}

	for _, item := range g.items {
		if color[item.ID] == colorWhite {
			if err := visit(item.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CriticalPath returns the maximum-weight dependency chain in execution
// order, dependencies first, along with its total estimated hours. Items
// without an estimate contribute zero weight. Ties break toward items that
// appear earlier in the document, anchored at the dependent end of the
// chain: among equal-weight chains the one whose final item (the last id
// in the returned path) is declared earliest wins. The graph must be
// acyclic.
func (g *Graph) CriticalPath() ([]string, float64) {
	type best struct {
		hours float64
		path  []string
	}
	memo := make(map[string]best, len(g.items))

	var down func(id string) best
	down = func(id string) best {
		if b, ok := memo[id]; ok {
			return b
		}
		b := best{hours: g.hours(id), path: []string{id}}
		// Deps are scanned in declared order and only a strictly heavier
		// chain replaces the pick, so ties resolve to the first declared.
		var pick *best
		for _, dep := range g.edges[id] {
			db := down(dep)
			if pick == nil || db.hours > pick.hours {
				copied := db
				pick = &copied
			}
		}
		if pick != nil {
			b.hours += pick.hours
			b.path = append([]string{id}, pick.path...)
		}
		memo[id] = b
		return b
	}

	var winner best
	found := false
	for _, item := range g.items {
		b := down(item.ID)
		if !found || b.hours > winner.hours {
			winner, found = b, true
		}
	}
	if !found {
		return nil, 0
	}

	// The chain was built leaf-last from the dependent's side; execution
	// order runs dependencies first.
	ordered := make([]string, len(winner.path))
	for i, id := range winner.path {
		ordered[len(winner.path)-1-i] = id
	}
	return ordered, winner.hours
}

func (g *Graph) hours(id string) float64 {
	item := g.items[g.index[id]]
	if item.EstimatedHours == nil {
		return 0
	}
	return *item.EstimatedHours
}
