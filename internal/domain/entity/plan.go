package entity

// SpendingCategory is one budget line inside a personal plan.
type SpendingCategory struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PlannedAmount float64 `json:"plannedAmount"`
	ActualAmount  float64 `json:"actualAmount"`
}

// PersonalPlan is an admin's private weekly budgeting plan. One plan per
// admin by convention; the store does not enforce it.
type PersonalPlan struct {
	ID              string             `json:"id"`
	AdminID         string             `json:"adminId"`
	WeeklyIncome    float64            `json:"weeklyIncome"`
	Categories      []SpendingCategory `json:"categories"`
	PersonalSavings float64            `json:"personalSavings"`
}
