package model

import "time"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,passwordlength,strongpassword"`
}

type ExpenseRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"max=1000"`
	Date        time.Time   `json:"date" validate:"required,notfuture"`
	Amount      float64     `json:"amount" validate:"gt=0,gte=0.01,lt=10000000000000000"`
	PaymentType PaymentType `json:"payment_type" validate:"required,paymenttype"`
}
