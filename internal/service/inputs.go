package service

import "time"

// Inputs use nil pointers for fields absent from the request, so updates
// can merge partial payloads onto current values. An explicit JSON null
// arrives as a pointer to the zero value and clears the field.

type FundInput struct {
	User *uint
	Code *string
	Name *string
}

// RefValue distinguishes "set fund to null" from "fund not in payload":
// a non-nil RefValue with a nil ID clears the reference.
type RefValue struct {
	ID *uint
}

type GenreInput struct {
	User       *uint
	Code       *string
	Name       *string
	IsIncoming *bool
	Fund       *RefValue
}

type PaymentInput struct {
	User     *uint
	Date     *time.Time
	Genre    *uint
	Fund     *uint
	Incoming *float64
	Outgoing *float64
	Remarks  *string
}

type UserInput struct {
	Username  *string
	Email     *string
	Password  *string
	Password2 *string
	IsActive  *bool
	IsStaff   *bool
}
