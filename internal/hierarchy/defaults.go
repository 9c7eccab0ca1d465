package hierarchy

import (
	"github.com/shopspring/decimal"

	"github.com/finmap-dev/finmap/internal/model"
)

// DefaultDefinition returns the reference five-branch chart: current and
// non-current assets and liabilities, income, expenses, and the Equity
// balancing account, all linked under the "Equation" display node.
func DefaultDefinition() Definition {
	return Definition{
		Accounts: []model.Account{
			// Assets branch
			{Name: "Cash", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "AR", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "Inventory", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "PPE", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "Intangibles", Kind: model.KindLeaf, Class: model.ClassAsset},
			{Name: "CurrentAssets", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"Cash", "AR", "Inventory"}},
			{Name: "NonCurrentAssets", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"PPE", "Intangibles"}},
			{Name: "Assets", Kind: model.KindDerived, Class: model.ClassAsset, Children: []string{"CurrentAssets", "NonCurrentAssets"}},
			// Liabilities branch
			{Name: "AP", Kind: model.KindLeaf, Class: model.ClassLiability},
			{Name: "NotesPayable", Kind: model.KindLeaf, Class: model.ClassLiability},
			{Name: "LongTermDebt", Kind: model.KindLeaf, Class: model.ClassLiability},
			{Name: "CurrentLiabilities", Kind: model.KindDerived, Class: model.ClassLiability, Children: []string{"AP", "NotesPayable"}},
			{Name: "NonCurrentLiabilities", Kind: model.KindDerived, Class: model.ClassLiability, Children: []string{"LongTermDebt"}},
			{Name: "Liabilities", Kind: model.KindDerived, Class: model.ClassLiability, Children: []string{"CurrentLiabilities", "NonCurrentLiabilities"}},
			// Income branch
			{Name: "OperatingIncome", Kind: model.KindLeaf, Class: model.ClassIncome},
			{Name: "NonOperatingIncome", Kind: model.KindLeaf, Class: model.ClassIncome},
			{Name: "Income", Kind: model.KindDerived, Class: model.ClassIncome, Children: []string{"OperatingIncome", "NonOperatingIncome"}},
			// Expenses branch
			{Name: "COGS", Kind: model.KindLeaf, Class: model.ClassExpense},
			{Name: "SGA", Kind: model.KindLeaf, Class: model.ClassExpense},
			{Name: "Depreciation", Kind: model.KindLeaf, Class: model.ClassExpense},
			{Name: "InterestExp", Kind: model.KindLeaf, Class: model.ClassExpense},
			{Name: "Expenses", Kind: model.KindDerived, Class: model.ClassExpense, Children: []string{"COGS", "SGA", "Depreciation", "InterestExp"}},
			// Balancing account
			{Name: "Equity", Kind: model.KindBalancing, Class: model.ClassEquity},
		},
		BranchRoots: BranchRoots{
			Assets:      "Assets",
			Liabilities: "Liabilities",
			Income:      "Income",
			Expenses:    "Expenses",
		},
		Balancing: "Equity",
		Root:      "Equation",
	}
}

// DefaultLeafValues returns the reference starting values for every leaf
// in DefaultDefinition.
func DefaultLeafValues() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Cash":               decimal.NewFromInt(10000),
		"AR":                 decimal.NewFromInt(12000),
		"Inventory":          decimal.NewFromInt(8000),
		"PPE":                decimal.NewFromInt(40000),
		"Intangibles":        decimal.NewFromInt(5000),
		"AP":                 decimal.NewFromInt(7000),
		"NotesPayable":       decimal.NewFromInt(6000),
		"LongTermDebt":       decimal.NewFromInt(20000),
		"OperatingIncome":    decimal.NewFromInt(15000),
		"NonOperatingIncome": decimal.NewFromInt(3000),
		"COGS":               decimal.NewFromInt(9000),
		"SGA":                decimal.NewFromInt(4000),
		"Depreciation":       decimal.NewFromInt(2000),
		"InterestExp":        decimal.NewFromInt(1000),
	}
}
