package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// InsufficientFundsError means a fund usage asked for more than the entry has
// available.
type InsufficientFundsError struct {
	FundID    int64
	Requested int64
	Available int64
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on entry %d: requested %d, available %d",
		e.FundID, e.Requested, e.Available)
}

// AlreadyReversedError means a reversal was attempted on an entry that is no
// longer in the completed state (it is part of an existing reversal pair).
type AlreadyReversedError struct {
	FundID int64
	Status string
}

func (e AlreadyReversedError) Error() string {
	return fmt.Sprintf("fund entry %d already reversed (status %s)", e.FundID, e.Status)
}

// OverpaymentError means a payment would push amountPaid past totalAmount.
type OverpaymentError struct {
	Requested int64
	Pending   int64
}

func (e OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %d exceeds pending amount %d", e.Requested, e.Pending)
}

// DuplicatePaymentError means the payment reference was already recorded; the
// replay is rejected rather than applied twice.
type DuplicatePaymentError struct {
	Reference string
}

func (e DuplicatePaymentError) Error() string {
	return fmt.Sprintf("payment reference %q already recorded", e.Reference)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsInsufficientFunds(err error) bool {
	var target InsufficientFundsError
	return errors.As(err, &target)
}

func IsAlreadyReversed(err error) bool {
	var target AlreadyReversedError
	return errors.As(err, &target)
}

func IsOverpayment(err error) bool {
	var target OverpaymentError
	return errors.As(err, &target)
}

func IsDuplicatePayment(err error) bool {
	var target DuplicatePaymentError
	return errors.As(err, &target)
}
