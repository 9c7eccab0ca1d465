package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finmap-dev/finmap/internal/hierarchy"
	"github.com/finmap-dev/finmap/internal/model"
)

// Config represents the top-level finmap.yaml configuration: the account
// hierarchy plus starting values for every leaf.
type Config struct {
	Root        string            `yaml:"root"`
	Balancing   string            `yaml:"balancing"`
	BranchRoots BranchRootsConfig `yaml:"branch_roots"`
	Accounts    []AccountConfig   `yaml:"accounts"`
}

// BranchRootsConfig names the four top-level accounts by role.
type BranchRootsConfig struct {
	Assets      string `yaml:"assets"`
	Liabilities string `yaml:"liabilities"`
	Income      string `yaml:"income"`
	Expenses    string `yaml:"expenses"`
}

// AccountConfig is one account entry. Value is a decimal string and only
// meaningful for leaves; Children only for derived accounts.
type AccountConfig struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Class    string   `yaml:"class"`
	Children []string `yaml:"children,omitempty,flow"`
	Value    string   `yaml:"value,omitempty"`
}

// Load reads a finmap.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config describing the reference chart and its starting
// leaf values.
func Default() *Config {
	def := hierarchy.DefaultDefinition()
	defaults := hierarchy.DefaultLeafValues()

	cfg := &Config{
		Root:      def.Root,
		Balancing: def.Balancing,
		BranchRoots: BranchRootsConfig{
			Assets:      def.BranchRoots.Assets,
			Liabilities: def.BranchRoots.Liabilities,
			Income:      def.BranchRoots.Income,
			Expenses:    def.BranchRoots.Expenses,
		},
	}
	for _, a := range def.Accounts {
		ac := AccountConfig{
			Name:     a.Name,
			Kind:     string(a.Kind),
			Class:    string(a.Class),
			Children: a.Children,
		}
		if a.Kind == model.KindLeaf {
			ac.Value = defaults[a.Name].String()
		}
		cfg.Accounts = append(cfg.Accounts, ac)
	}
	return cfg
}

// Definition converts the config into the engine-facing hierarchy
// definition. Structural validation happens in hierarchy.New, not here.
func (c *Config) Definition() hierarchy.Definition {
	def := hierarchy.Definition{
		Root:      c.Root,
		Balancing: c.Balancing,
		BranchRoots: hierarchy.BranchRoots{
			Assets:      c.BranchRoots.Assets,
			Liabilities: c.BranchRoots.Liabilities,
			Income:      c.BranchRoots.Income,
			Expenses:    c.BranchRoots.Expenses,
		},
	}
	for _, a := range c.Accounts {
		def.Accounts = append(def.Accounts, model.Account{
			Name:     a.Name,
			Kind:     model.AccountKind(a.Kind),
			Class:    model.Class(a.Class),
			Children: a.Children,
		})
	}
	return def
}

// LeafValues parses the configured starting value of every leaf account.
// Leaves without a value default to zero.
func (c *Config) LeafValues() (map[string]decimal.Decimal, error) {
	values := make(map[string]decimal.Decimal)
	for _, a := range c.Accounts {
		if model.AccountKind(a.Kind) != model.KindLeaf {
			continue
		}
		if a.Value == "" {
			values[a.Name] = decimal.Zero
			continue
		}
		v, err := decimal.NewFromString(a.Value)
		if err != nil {
			return nil, fmt.Errorf("account %q: parsing value %q: %w", a.Name, a.Value, err)
		}
		values[a.Name] = v
	}
	return values, nil
}
