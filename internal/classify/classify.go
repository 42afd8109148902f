// Package classify seeds statement tables from trial balance rows by
// keyword-matching account names. The keyword table is configuration, not
// logic: deployments with a different chart of accounts replace it wholesale
// via a YAML file.
package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// Target names the statement table a matched account feeds.
type Target string

const (
	TargetRevenue      Target = "revenue"
	TargetExpense      Target = "expense"
	TargetCurrentAsset Target = "current_asset"
	TargetFixedAsset   Target = "fixed_asset"
	TargetCapital      Target = "capital"
	TargetLiability    Target = "liability"
)

// Rule maps account-name keywords to a statement target. Matching is
// case-insensitive substring; the first matching rule wins, so rule order is
// significant.
type Rule struct {
	Target   Target   `yaml:"target"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the Indonesian chart-of-accounts keyword table the tool
// ships with.
var DefaultRules = []Rule{
	{Target: TargetRevenue, Keywords: []string{"pendapatan", "penjualan"}},
	{Target: TargetExpense, Keywords: []string{"beban", "biaya"}},
	{Target: TargetCurrentAsset, Keywords: []string{"kas", "perlengkapan", "piutang"}},
	{Target: TargetFixedAsset, Keywords: []string{"peralatan", "gedung", "kendaraan"}},
	{Target: TargetCapital, Keywords: []string{"modal"}},
	{Target: TargetLiability, Keywords: []string{"hutang", "utang"}},
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a rule table from a YAML file. An empty path returns the
// defaults.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword rules: %w", err)
	}
	var f rulesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse keyword rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("keyword rules file %s defines no rules", path)
	}
	return f.Rules, nil
}

// Match classifies an account name against the rule table.
func Match(name string, rules []Rule) (Target, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Target, true
			}
		}
	}
	return "", false
}

// Seed is the bulk-seeded statement content derived from the trial balance.
type Seed struct {
	Revenues       []domain.LineItem
	Expenses       []domain.LineItem
	CurrentAssets  []domain.LineItem
	FixedAssets    []domain.LineItem
	Liabilities    []domain.LineItem
	OpeningCapital decimal.Decimal
}

// BuildSeed scans trial balance rows and buckets them by classification.
// Revenue, capital and liability accounts contribute their kredit side;
// expense and asset accounts their debit side. Capital overwrites rather
// than accumulating, matching the single opening-capital figure. Unmatched
// rows are silently skipped; this is a best-effort heuristic.
func BuildSeed(rows []domain.TrialBalanceRow, rules []Rule) Seed {
	seed := Seed{OpeningCapital: decimal.Zero}
	for _, row := range rows {
		name := strings.TrimSpace(row.Account)
		if name == "" {
			continue
		}
		target, ok := Match(name, rules)
		if !ok {
			continue
		}
		switch target {
		case TargetRevenue:
			seed.Revenues = append(seed.Revenues, domain.LineItem{Label: name, Amount: row.Kredit})
		case TargetExpense:
			seed.Expenses = append(seed.Expenses, domain.LineItem{Label: name, Amount: row.Debit})
		case TargetCurrentAsset:
			seed.CurrentAssets = append(seed.CurrentAssets, domain.LineItem{Label: name, Amount: row.Debit})
		case TargetFixedAsset:
			seed.FixedAssets = append(seed.FixedAssets, domain.LineItem{Label: name, Amount: row.Debit})
		case TargetCapital:
			seed.OpeningCapital = row.Kredit
		case TargetLiability:
			seed.Liabilities = append(seed.Liabilities, domain.LineItem{Label: name, Amount: row.Kredit})
		}
	}
	return seed
}
