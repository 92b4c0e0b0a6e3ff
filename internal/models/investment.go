package models

import "time"

// Investment is a tracked savings/investment row. Amounts are stored in
// cents; PercentageYield is free text as entered by the user (e.g. "102% CDI").
type Investment struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Amount          int64     `json:"amount"`
	InvestmentDate  time.Time `json:"investment_date"`
	RedemptionDate  time.Time `json:"redemption_date"`
	ForecastAmount  int64     `json:"forecast_amount"`
	PercentageYield string    `json:"percentage_yield"`
}
