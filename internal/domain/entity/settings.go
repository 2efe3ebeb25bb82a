package entity

// Settings is the single active configuration record for the savings group.
type Settings struct {
	ID                                 string  `json:"id"`
	TargetAmount                       float64 `json:"targetAmount"`       // Group savings target, strictly positive.
	TargetPeriodMonths                 int     `json:"targetPeriodMonths"` // Months to reach the target, strictly positive.
	DailyMinimum                       float64 `json:"dailyMinimum"`       // Expected minimum daily deposit per member.
	GlobalInterestRate                 float64 `json:"globalInterestRate"` // Default loan interest rate, percent.
	RequirePasswordForSensitiveActions bool    `json:"requirePasswordForSensitiveActions"`
}
