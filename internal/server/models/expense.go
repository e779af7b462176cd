package models

import "time"

// ExpenseStatus is the closed, case-sensitive set of expense claim states.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "Pending"
	ExpenseApproved ExpenseStatus = "Approved"
	ExpenseRejected ExpenseStatus = "Rejected"
)

// Disposition reports whether s is a valid admin decision. Pending is the
// initial state only; an expense can never be moved back to it.
func (s ExpenseStatus) Disposition() bool {
	return s == ExpenseApproved || s == ExpenseRejected
}

// Expense is a reimbursable claim owned by one employee. Status and date
// are forced server-side on submission; only the status is ever mutated,
// only by an admin, and only to Approved or Rejected.
type Expense struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employee_id"`
	Description     string        `json:"description"`
	Amount          float64       `json:"amount"`
	Category        string        `json:"category"`
	Status          ExpenseStatus `json:"status"`
	Date            time.Time     `json:"date"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
}
