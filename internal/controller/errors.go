package controller

import "errors"

var (
	ErrInvalidAction         = errors.New("unsupported action")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrNoActiveAction        = errors.New("no action is open for this account")
	ErrActionNotAllowed      = errors.New("action is not allowed with the current amount and health factor")
	ErrSubmissionInFlight    = errors.New("a submission is already in flight")
	ErrCollateralNotEligible = errors.New("asset cannot be used as collateral")
)
