package reserve

func singleComponentParams() FinancialParameters {
	return FinancialParameters{
		BeginningYear:             2025,
		ProjectionYears:           30,
		InflationRate:             0,
		InterestRate:              0,
		BeginningReserveBalance:   2000,
		CurrentAnnualContribution: 500,
	}
}

func roofComponent() Component {
	return Component{
		ID:            "roof",
		Name:          "Roof",
		Category:      CategoryBuildingExterior,
		Quantity:      1,
		CostPerUnit:   10000,
		UsefulLife:    10,
		RemainingLife: 5,
	}
}

func sampleInventory() []Component {
	return []Component{
		roofComponent(),
		{ID: "paving", Name: "Asphalt Paving", Category: CategorySitework, Quantity: 2000, CostPerUnit: 3, UsefulLife: 20, RemainingLife: 12},
		{ID: "boiler", Name: "Boiler", Category: CategoryMechanical, Quantity: 2, CostPerUnit: 8000, UsefulLife: 25, RemainingLife: 3},
		{ID: "paint", Name: "Exterior Paint", Category: CategoryMaintenance, Quantity: 1, CostPerUnit: 4500, UsefulLife: 7, RemainingLife: 0},
		{ID: "pool", Name: "Pool Resurfacing", Category: CategoryAmenities, Quantity: 1, CostPerUnit: 12000, UsefulLife: 12, RemainingLife: 12},
		{ID: "lights", Name: "Site Lighting", Category: CategoryElectrical, Quantity: 40, CostPerUnit: 350, UsefulLife: 15, RemainingLife: 9},
	}
}
