package model

import "time"

type PaymentType string

const (
	PaymentCash               PaymentType = "Cash"
	PaymentCreditCard         PaymentType = "CreditCard"
	PaymentDebitCard          PaymentType = "DebitCard"
	PaymentElectronicTransfer PaymentType = "ElectronicTransfer"
)

var PaymentTypes = []PaymentType{
	PaymentCash,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentElectronicTransfer,
}

func (p PaymentType) Valid() bool {
	for _, known := range PaymentTypes {
		if p == known {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Amount      float64     `json:"amount"`
	PaymentType PaymentType `json:"payment_type"`
	UserID      int64       `json:"user_id"`
}

// ExpenseView is an expense as rendered for a caller's locale.
type ExpenseView struct {
	Expense
	PaymentLabel string `json:"payment_label"`
}

type ExpenseSummary struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type ExpenseList struct {
	Expenses []ExpenseSummary `json:"expenses"`
}

type RegisteredExpense struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
