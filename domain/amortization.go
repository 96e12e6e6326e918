package domain

// AmortizationStep is one month of the straight-line capital cost
// simulation. The outstanding balance is the opening balance, before that
// month's installment is paid, and the interest is charged on it.
type AmortizationStep struct {
	Month              int     `json:"month"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	MonthlyInterest    float64 `json:"monthly_interest"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}
