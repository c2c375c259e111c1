package models

import "github.com/cockroachdb/errors"

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrUnknownUser   = errors.Wrap(NotFoundError, "unknown user")
	ErrUserSuspended = errors.Wrap(ForbiddenError, "account suspended")
)

// Coupon redemption errors. The order in which the conditions are checked is
// part of the contract: existence, then active flag, then usage cap, then
// expiry. Each failure keeps its own stable message.
var (
	ErrCouponNotFound  = errors.Wrap(NotFoundError, "invalid coupon code")
	ErrCouponInactive  = errors.Wrap(BadParameterError, "this coupon is no longer active")
	ErrCouponExhausted = errors.Wrap(BadParameterError, "this coupon has reached its usage limit")
	ErrCouponExpired   = errors.Wrap(BadParameterError, "this coupon has expired")
)

// Plan and payment errors
var (
	ErrPlanLimitReached   = errors.Wrap(ForbiddenError, "plan limit reached")
	ErrPaymentNotPending  = errors.Wrap(BadParameterError, "payment request is not pending")
	ErrRegistrationClosed = errors.Wrap(ForbiddenError, "registration is currently disabled")
)

// Instagram connection errors
var ErrInstagramNotConnected = errors.Wrap(BadParameterError, "no instagram account connected")

// ErrIgnoreRollBackError can be returned from a transaction callback to roll
// the transaction back without surfacing an error to the caller.
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
