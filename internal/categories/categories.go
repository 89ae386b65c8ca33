// Package categories holds the transaction category vocabulary. The
// domain engines never inspect it; it is configuration handed to the
// presentation layer so the vocabulary can change without touching them.
package categories

// Config is the category vocabulary offered for each transaction kind.
type Config struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// Default returns the stock vocabulary.
func Default() Config {
	return Config{
		Income: []string{
			"Salary", "Investment", "Side Hustle", "Allowance", "Other Income",
		},
		Expense: []string{
			"Food", "Transport", "Education", "Entertainment", "Shopping",
			"Bills", "Healthcare", "Housing", "Other Expenses",
		},
	}
}

// ForKind returns the list for the given transaction kind name, or nil
// when the kind is unknown.
func (c Config) ForKind(kind string) []string {
	switch kind {
	case "Income":
		return c.Income
	case "Expense":
		return c.Expense
	}
	return nil
}
