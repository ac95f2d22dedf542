package pnl

import "strings"

// MetricKey identifies one of the figures extracted from a P&L report.
type MetricKey string

const (
	MetricIncome        MetricKey = "income"
	MetricCOGS          MetricKey = "cogs"
	MetricExpenses      MetricKey = "expenses"
	MetricOtherExpenses MetricKey = "other_expenses"
	MetricNetIncome     MetricKey = "net_income"
)

// Derived output keys. These are computed from resolved metrics and never
// matched against report text.
const (
	KeyTotalExpenses = "total_expenses"
	KeyMargin        = "margin"
)

// AllMetrics lists every directly extracted metric in resolution order.
var AllMetrics = []MetricKey{
	MetricIncome,
	MetricCOGS,
	MetricExpenses,
	MetricOtherExpenses,
	MetricNetIncome,
}

// Catalog maps each metric to the label phrases that identify it in report
// text. Phrases are matched case-insensitively; order carries no priority.
// A Catalog is immutable once built; construct a new one to change phrases.
type Catalog map[MetricKey][]string

// DefaultCatalog returns the built-in English/Spanish label catalog used for
// QuickBooks-style P&L exports.
func DefaultCatalog() Catalog {
	return Catalog{
		MetricIncome: {
			"total for income",
			"total de ingresos",
		},
		MetricCOGS: {
			"total for cost of goods sold",
			"costo de ventas",
			"total del costo de ventas",
		},
		MetricExpenses: {
			"total for expenses",
			"total de gastos",
		},
		MetricOtherExpenses: {
			"total for other expenses",
			"otros gastos",
		},
		MetricNetIncome: {
			"net income",
			"utilidad neta",
			"ingreso neto",
		},
	}
}

// Phrases returns the accepted label phrases for a metric, lowercased.
func (c Catalog) Phrases(key MetricKey) []string {
	phrases := c[key]
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return lowered
}
