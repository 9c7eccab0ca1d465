package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmap-dev/finmap/internal/model"
)

func TestNew_Default(t *testing.T) {
	h, err := New(DefaultDefinition())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Cash", "AR", "Inventory", "PPE", "Intangibles",
		"AP", "NotesPayable", "LongTermDebt",
		"OperatingIncome", "NonOperatingIncome",
		"COGS", "SGA", "Depreciation", "InterestExp",
	}, h.LeafNames())

	assert.Len(t, h.DerivedNames(), 8)
	assert.NotContains(t, h.DerivedNames(), "Equity")
	assert.NotContains(t, h.DerivedNames(), "Equation")

	assert.True(t, h.IsLeaf("Cash"))
	assert.False(t, h.IsLeaf("Assets"))
	assert.True(t, h.IsBalancing("Equity"))
	assert.False(t, h.IsBalancing("Assets"))

	assert.Equal(t, "Equity", h.BalancingName())
	assert.Equal(t, "Equation", h.RootName())
	assert.Equal(t, "Assets", h.BranchRoots().Assets)
	assert.Equal(t, "Expenses", h.BranchRoots().Expenses)

	children, err := h.ChildrenOf("CurrentAssets")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cash", "AR", "Inventory"}, children)
}

func TestChildrenOf_Errors(t *testing.T) {
	h, err := New(DefaultDefinition())
	require.NoError(t, err)

	_, err = h.ChildrenOf("NoSuchAccount")
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NoSuchAccount", notFound.Name)

	_, err = h.ChildrenOf("Cash")
	var unknown UnknownAccountError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Cash", unknown.Name)

	_, err = h.ChildrenOf("Equity")
	assert.ErrorAs(t, err, &unknown)
}

func TestEvalOrder_ChildrenBeforeParents(t *testing.T) {
	h, err := New(DefaultDefinition())
	require.NoError(t, err)

	pos := make(map[string]int)
	for i, name := range h.EvalOrder() {
		pos[name] = i
	}
	assert.Len(t, pos, 8)

	for _, name := range h.EvalOrder() {
		children, err := h.ChildrenOf(name)
		require.NoError(t, err)
		for _, c := range children {
			if h.IsLeaf(c) {
				continue
			}
			assert.Less(t, pos[c], pos[name], "%s must be evaluated before %s", c, name)
		}
	}
}

// minimalDef builds a tiny valid definition that tests can then break.
func minimalDef() Definition {
	return Definition{
		Accounts: []model.Account{
			{Name: "A1", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "Assets", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"A1"}},
			{Name: "L1", Kind: model.KindLeaf, Class: model.ClassLiability},
			{Name: "Liabilities", Kind: model.KindDerived, Class: model.ClassLiability, Children: []string{"L1"}},
			{Name: "I1", Kind: model.KindLeaf, Class: model.ClassIncome},
			{Name: "Income", Kind: model.KindDerived, Class: model.ClassIncome, Children: []string{"I1"}},
			{Name: "E1", Kind: model.KindLeaf, Class: model.ClassExpense},
			{Name: "Expenses", Kind: model.KindDerived, Class: model.ClassExpense, Children: []string{"E1"}},
			{Name: "Equity", Kind: model.KindBalancing, Class: model.ClassEquity},
		},
		BranchRoots: BranchRoots{Assets: "Assets", Liabilities: "Liabilities", Income: "Income", Expenses: "Expenses"},
		Balancing:   "Equity",
		Root:        "Equation",
	}
}

func requireInvalid(t *testing.T, def Definition, fragment string) {
	t.Helper()
	_, err := New(def)
	var invalid InvalidHierarchyError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), fragment)
}

func TestNew_MinimalValid(t *testing.T) {
	_, err := New(minimalDef())
	require.NoError(t, err)
}

func TestNew_DanglingChild(t *testing.T) {
	def := minimalDef()
	def.Accounts[1].Children = []string{"A1", "Ghost"}
	requireInvalid(t, def, `unknown child "Ghost"`)
}

func TestNew_SharedChild(t *testing.T) {
	def := minimalDef()
	def.Accounts[3].Children = []string{"L1", "A1"}
	requireInvalid(t, def, "multiple parents")
}

func TestNew_DisconnectedCycle(t *testing.T) {
	def := minimalDef()
	def.Accounts = append(def.Accounts,
		model.Account{Name: "X", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"Y"}},
		model.Account{Name: "Y", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"X"}},
	)
	requireInvalid(t, def, "not reachable from any branch root")
}

func TestNew_OrphanLeaf(t *testing.T) {
	def := minimalDef()
	def.Accounts = append(def.Accounts, model.Account{Name: "Stray", Kind: model.KindLeaf, Class: model.ClassAsset})
	requireInvalid(t, def, `"Stray" is not reachable`)
}

func TestNew_DuplicateName(t *testing.T) {
	def := minimalDef()
	def.Accounts = append(def.Accounts, model.Account{Name: "A1", Kind: model.KindLeaf, Class: model.ClassAsset})
	requireInvalid(t, def, `duplicate account "A1"`)
}

func TestNew_DerivedWithoutChildren(t *testing.T) {
	def := minimalDef()
	def.Accounts[1].Children = nil
	requireInvalid(t, def, `derived account "Assets" has no children`)
}

func TestNew_LeafWithChildren(t *testing.T) {
	def := minimalDef()
	def.Accounts[0].Children = []string{"L1"}
	requireInvalid(t, def, `leaf account "A1" must not have children`)
}

func TestNew_BalancingAsChild(t *testing.T) {
	def := minimalDef()
	def.Accounts[1].Children = []string{"A1", "Equity"}
	requireInvalid(t, def, `balancing account "Equity" cannot be a child`)
}

func TestNew_MissingBranchRoot(t *testing.T) {
	def := minimalDef()
	def.BranchRoots.Income = "Revenue"
	requireInvalid(t, def, `branch root "Revenue" does not exist`)
}

func TestNew_BranchRootWithParent(t *testing.T) {
	def := minimalDef()
	def.Accounts = append(def.Accounts, model.Account{
		Name: "Wrapper", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"Assets"},
	})
	requireInvalid(t, def, `branch root "Assets" cannot be a child`)
}

func TestNew_MissingBalancing(t *testing.T) {
	def := minimalDef()
	def.Balancing = "Capital"
	requireInvalid(t, def, `balancing account "Capital" does not exist`)
}

func TestNew_RootNameCollision(t *testing.T) {
	def := minimalDef()
	def.Root = "Assets"
	requireInvalid(t, def, `root synthesis node "Assets" collides`)
}

func TestNew_CollectsAllProblems(t *testing.T) {
	def := minimalDef()
	def.Accounts[1].Children = []string{"A1", "Ghost"}
	def.Balancing = "Capital"
	_, err := New(def)
	var invalid InvalidHierarchyError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Problems, 2)
}

func TestNew_ErrorIsNotRecoverable(t *testing.T) {
	def := minimalDef()
	def.Root = ""
	_, err := New(def)
	require.Error(t, err)
	assert.False(t, errors.As(err, &NotFoundError{}), "construction failure must be InvalidHierarchyError")
}
