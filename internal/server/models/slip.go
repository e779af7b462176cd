package models

import "time"

// SalarySlip is a single salary disbursement record for one employee for
// one pay period. Slips are created by admins and immutable afterwards.
// Multiple slips for the same employee/period are permitted.
type SalarySlip struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Amount     float64   `json:"amount"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
}
