package reserve

// CategoryTotals is the pointwise sum of the ComponentYearState fields of a
// category's members.
type CategoryTotals struct {
	Category            Category `json:"-"`
	Label               string   `json:"label"`
	Count               int      `json:"count"`
	TotalCost           float64  `json:"totalCost"`
	FullFundingBalance  float64  `json:"fullFundingBalance"`
	CurrentReserveFunds float64  `json:"currentReserveFunds"`
	FundsNeeded         float64  `json:"fundsNeeded"`
	AnnualFunding       float64  `json:"annualFunding"`
	Expenditures        float64  `json:"expenditures"`
}

func (t *CategoryTotals) addState(s ComponentYearState) {
	t.Count++
	t.TotalCost += s.TotalCost
	t.FullFundingBalance += s.FullFundingBalance
	t.CurrentReserveFunds += s.CurrentReserveFunds
	t.FundsNeeded += s.FundsNeeded
	t.AnnualFunding += s.AnnualFunding
	t.Expenditures += s.Expenditure
}

func (t *CategoryTotals) addTotals(o CategoryTotals) {
	t.Count += o.Count
	t.TotalCost += o.TotalCost
	t.FullFundingBalance += o.FullFundingBalance
	t.CurrentReserveFunds += o.CurrentReserveFunds
	t.FundsNeeded += o.FundsNeeded
	t.AnnualFunding += o.AnnualFunding
	t.Expenditures += o.Expenditures
}

// OverallLabel names the cross-category totals.
const OverallLabel = "Overall"

// CategoryBreakdown holds one CategoryTotals per category, in Categories()
// order, and the overall totals.
type CategoryBreakdown struct {
	ByCategory []CategoryTotals `json:"byCategory"`
	Overall    CategoryTotals   `json:"overall"`
}

// Get returns the totals for a single category.
func (b CategoryBreakdown) Get(c Category) CategoryTotals {
	if !c.valid() || int(c) >= len(b.ByCategory) {
		return CategoryTotals{Category: c, Label: c.String()}
	}
	return b.ByCategory[c]
}

// Aggregate reduces component states into per-category totals, then sums the
// per-category totals into Overall. States with an out-of-range category are
// counted under Other.
func Aggregate(states []ComponentYearState) CategoryBreakdown {
	categories := Categories()
	breakdown := CategoryBreakdown{ByCategory: make([]CategoryTotals, len(categories))}

	for i, category := range categories {
		totals := CategoryTotals{Category: category, Label: category.String()}
		for _, s := range states {
			if normalizeCategory(s.Category) == category {
				totals.addState(s)
			}
		}
		breakdown.ByCategory[i] = totals
	}

	// Overall is always derived from the category level.
	breakdown.Overall = CategoryTotals{Category: CategoryOther, Label: OverallLabel}
	for _, totals := range breakdown.ByCategory {
		breakdown.Overall.addTotals(totals)
	}
	return breakdown
}

func normalizeCategory(c Category) Category {
	if !c.valid() {
		return CategoryOther
	}
	return c
}
