package hierarchy

import (
	"fmt"

	"github.com/finmap-dev/finmap/internal/model"
)

// BranchRoots names the four top-level derived accounts whose subtrees
// partition every non-balancing account. The roles are fixed because the
// balancing formula needs to tell them apart.
type BranchRoots struct {
	Assets      string
	Liabilities string
	Income      string
	Expenses    string
}

func (b BranchRoots) names() []string {
	return []string{b.Assets, b.Liabilities, b.Income, b.Expenses}
}

// Definition is the raw input to New. Accounts are kept in declaration
// order; that order fixes leaf enumeration and summation order everywhere
// downstream.
type Definition struct {
	Accounts    []model.Account
	BranchRoots BranchRoots
	Balancing   string
	// Root names the display-only synthesis node that links the four
	// branch roots and the balancing account on the mind map. It is not
	// an account and never carries a value.
	Root string
}

// Hierarchy is a validated, immutable account forest. It is safe for
// concurrent readers after construction.
type Hierarchy struct {
	accounts    []model.Account
	byName      map[string]model.Account
	parentOf    map[string]string
	leafNames   []string
	derivedName []string
	evalOrder   []string
	branchRoots BranchRoots
	balancing   string
	root        string
}

// New validates a Definition and builds the lookup and evaluation
// structures. All defects found are reported together in a single
// InvalidHierarchyError.
func New(def Definition) (*Hierarchy, error) {
	var problems []string

	byName := make(map[string]model.Account, len(def.Accounts))
	for _, a := range def.Accounts {
		if _, dup := byName[a.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate account %q", a.Name))
			continue
		}
		byName[a.Name] = a
	}

	parentOf := make(map[string]string)
	for _, a := range def.Accounts {
		switch a.Kind {
		case model.KindDerived:
			if len(a.Children) == 0 {
				problems = append(problems, fmt.Sprintf("derived account %q has no children", a.Name))
			}
			for _, c := range a.Children {
				child, ok := byName[c]
				if !ok {
					problems = append(problems, fmt.Sprintf("account %q references unknown child %q", a.Name, c))
					continue
				}
				if child.Kind == model.KindBalancing {
					problems = append(problems, fmt.Sprintf("balancing account %q cannot be a child of %q", c, a.Name))
					continue
				}
				if prev, claimed := parentOf[c]; claimed {
					problems = append(problems, fmt.Sprintf("account %q has multiple parents (%q and %q)", c, prev, a.Name))
					continue
				}
				parentOf[c] = a.Name
			}
		case model.KindLeaf, model.KindBalancing:
			if len(a.Children) > 0 {
				problems = append(problems, fmt.Sprintf("%s account %q must not have children", a.Kind, a.Name))
			}
		default:
			problems = append(problems, fmt.Sprintf("account %q has unknown kind %q", a.Name, a.Kind))
		}
	}

	for _, name := range def.BranchRoots.names() {
		if name == "" {
			problems = append(problems, "all four branch roots must be named")
			continue
		}
		a, ok := byName[name]
		if !ok {
			problems = append(problems, fmt.Sprintf("branch root %q does not exist", name))
			continue
		}
		if a.Kind != model.KindDerived {
			problems = append(problems, fmt.Sprintf("branch root %q must be derived, is %s", name, a.Kind))
		}
		if parent, hasParent := parentOf[name]; hasParent {
			problems = append(problems, fmt.Sprintf("branch root %q cannot be a child of %q", name, parent))
		}
	}

	switch bal, ok := byName[def.Balancing]; {
	case def.Balancing == "":
		problems = append(problems, "balancing account must be named")
	case !ok:
		problems = append(problems, fmt.Sprintf("balancing account %q does not exist", def.Balancing))
	case bal.Kind != model.KindBalancing:
		problems = append(problems, fmt.Sprintf("balancing account %q must have kind %s, has %s", def.Balancing, model.KindBalancing, bal.Kind))
	}

	if def.Root == "" {
		problems = append(problems, "root synthesis node must be named")
	} else if _, collides := byName[def.Root]; collides {
		problems = append(problems, fmt.Sprintf("root synthesis node %q collides with an account", def.Root))
	}

	// Every non-balancing account must sit in exactly one branch-root
	// subtree. Reachability from the four roots implies acyclicity given
	// the single-parent check above; anything left over is orphaned or
	// part of a disconnected cycle.
	if len(problems) == 0 {
		reached := make(map[string]bool, len(def.Accounts))
		var order []string
		var walk func(name string)
		walk = func(name string) {
			if reached[name] {
				return
			}
			reached[name] = true
			for _, c := range byName[name].Children {
				walk(c)
			}
			order = append(order, name)
		}
		for _, name := range def.BranchRoots.names() {
			walk(name)
		}
		for _, a := range def.Accounts {
			if a.Kind != model.KindBalancing && !reached[a.Name] {
				problems = append(problems, fmt.Sprintf("account %q is not reachable from any branch root", a.Name))
			}
		}
		if len(problems) == 0 {
			return build(def, byName, parentOf, order), nil
		}
	}

	return nil, InvalidHierarchyError{Problems: problems}
}

// build assembles the Hierarchy once validation has passed. evalOrder is
// the post-order walk from New: children strictly before parents, branch
// roots last within their own subtrees.
func build(def Definition, byName map[string]model.Account, parentOf map[string]string, postOrder []string) *Hierarchy {
	h := &Hierarchy{
		accounts:    def.Accounts,
		byName:      byName,
		parentOf:    parentOf,
		branchRoots: def.BranchRoots,
		balancing:   def.Balancing,
		root:        def.Root,
	}
	for _, a := range def.Accounts {
		switch a.Kind {
		case model.KindLeaf:
			h.leafNames = append(h.leafNames, a.Name)
		case model.KindDerived:
			h.derivedName = append(h.derivedName, a.Name)
		}
	}
	for _, name := range postOrder {
		if byName[name].Kind == model.KindDerived {
			h.evalOrder = append(h.evalOrder, name)
		}
	}
	return h
}

// Account returns the account with the given name.
func (h *Hierarchy) Account(name string) (model.Account, bool) {
	a, ok := h.byName[name]
	return a, ok
}

// Accounts returns every account in declaration order.
func (h *Hierarchy) Accounts() []model.Account {
	return h.accounts
}

// ChildrenOf returns a derived account's children in declaration order.
func (h *Hierarchy) ChildrenOf(name string) ([]string, error) {
	a, ok := h.byName[name]
	if !ok {
		return nil, NotFoundError{Name: name}
	}
	if a.Kind != model.KindDerived {
		return nil, UnknownAccountError{Name: name}
	}
	return a.Children, nil
}

// IsLeaf reports whether name is a leaf account.
func (h *Hierarchy) IsLeaf(name string) bool {
	return h.byName[name].Kind == model.KindLeaf
}

// IsBalancing reports whether name is the balancing account.
func (h *Hierarchy) IsBalancing(name string) bool {
	return h.byName[name].Kind == model.KindBalancing
}

// LeafNames returns every leaf account name in declaration order.
func (h *Hierarchy) LeafNames() []string {
	return h.leafNames
}

// DerivedNames returns every derived account name in declaration order,
// excluding the balancing account and the root synthesis node.
func (h *Hierarchy) DerivedNames() []string {
	return h.derivedName
}

// EvalOrder returns the derived account names in dependency order:
// every account appears after all of its descendants.
func (h *Hierarchy) EvalOrder() []string {
	return h.evalOrder
}

// BranchRoots returns the four top-level account names by role.
func (h *Hierarchy) BranchRoots() BranchRoots {
	return h.branchRoots
}

// BalancingName returns the balancing account's name.
func (h *Hierarchy) BalancingName() string {
	return h.balancing
}

// RootName returns the display-only root synthesis node's name.
func (h *Hierarchy) RootName() string {
	return h.root
}
