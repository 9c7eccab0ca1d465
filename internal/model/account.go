package model

// AccountKind classifies how an account's value is produced.
type AccountKind string

const (
	// KindLeaf accounts carry externally supplied values.
	KindLeaf AccountKind = "leaf"
	// KindDerived accounts equal the sum of their children's values.
	KindDerived AccountKind = "derived"
	// KindBalancing accounts are computed from the accounting identity
	// Assets + Income - Expenses - Liabilities, not from children.
	KindBalancing AccountKind = "balancing"
)

// Class groups accounts for display styling on the mind map.
type Class string

const (
	ClassAsset     Class = "asset"
	ClassLiability Class = "liability"
	ClassEquity    Class = "equity"
	ClassIncome    Class = "income"
	ClassExpense   Class = "expense"
)

// Account is a node in the account hierarchy.
type Account struct {
	Name     string
	Kind     AccountKind
	Class    Class
	Children []string // derived accounts only, declaration order
}
