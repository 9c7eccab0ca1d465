// Package engine recomputes every derived account value and display weight
// from a complete leaf snapshot. Recompute is a pure function of the
// hierarchy and the snapshot: it keeps no state, mutates nothing shared,
// and identical inputs always produce identical outputs.
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finmap-dev/finmap/internal/hierarchy"
)

// Values maps account names to monetary amounts.
type Values map[string]decimal.Decimal

// Weights maps account names to normalized display weights in [0, 1].
type Weights map[string]decimal.Decimal

// MissingLeafValueError reports leaves absent from a snapshot. The snapshot
// must cover every leaf; no partial computation happens when it does not.
type MissingLeafValueError struct {
	Missing []string
}

func (e MissingLeafValueError) Error() string {
	return fmt.Sprintf("missing leaf values: %s", strings.Join(e.Missing, ", "))
}

var one = decimal.NewFromInt(1)

// Recompute rolls every derived account up from the leaf snapshot, derives
// the balancing account from the four branch totals, and normalizes a
// display weight for every account against the current maximum value.
//
// The returned value map covers every derived account plus the balancing
// account; the weight map covers every account. Negative leaves are summed
// algebraically; their weights clamp to zero.
func Recompute(h *hierarchy.Hierarchy, leaves Values) (Values, Weights, error) {
	if err := checkSnapshot(h, leaves); err != nil {
		return nil, nil, err
	}

	totals := make(Values, len(h.LeafNames())+len(h.DerivedNames())+1)
	for _, name := range h.LeafNames() {
		totals[name] = leaves[name]
	}

	// Children strictly precede parents in EvalOrder, and each child sum
	// runs left to right over the declared order, so results are exact
	// and reproducible.
	for _, name := range h.EvalOrder() {
		children, err := h.ChildrenOf(name)
		if err != nil {
			return nil, nil, err
		}
		sum := decimal.Zero
		for _, c := range children {
			sum = sum.Add(totals[c])
		}
		totals[name] = sum
	}

	roots := h.BranchRoots()
	equity := totals[roots.Assets].
		Add(totals[roots.Income]).
		Sub(totals[roots.Expenses]).
		Sub(totals[roots.Liabilities])
	totals[h.BalancingName()] = equity

	derived := make(Values, len(h.DerivedNames())+1)
	for _, name := range h.DerivedNames() {
		derived[name] = totals[name]
	}
	derived[h.BalancingName()] = equity

	return derived, weigh(totals), nil
}

// checkSnapshot enforces the input contract: a value for every leaf, and
// nothing else except the balancing account, which callers may echo back
// and is ignored.
func checkSnapshot(h *hierarchy.Hierarchy, leaves Values) error {
	var missing []string
	for _, name := range h.LeafNames() {
		if _, ok := leaves[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return MissingLeafValueError{Missing: missing}
	}
	for name := range leaves {
		if !h.IsLeaf(name) && name != h.BalancingName() {
			return hierarchy.UnknownAccountError{Name: name}
		}
	}
	return nil
}

// weigh normalizes every value against max(1, largest value). The floor of
// one keeps an all-zero chart from dividing by zero; the clamp keeps
// negative values at minimum size.
func weigh(totals Values) Weights {
	ceiling := decimal.Zero
	for _, v := range totals {
		if v.GreaterThan(ceiling) {
			ceiling = v
		}
	}
	if ceiling.LessThan(one) {
		ceiling = one
	}

	weights := make(Weights, len(totals))
	for name, v := range totals {
		w := v.Div(ceiling)
		switch {
		case w.IsNegative():
			w = decimal.Zero
		case w.GreaterThan(one):
			w = one
		}
		weights[name] = w
	}
	return weights
}
