package apperrors

import "errors"

// ErrNotFound indicates that a requested record (customer, account or employee) could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a record whose identifier already exists.
var ErrDuplicate = errors.New("identifier already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrForbidden indicates the caller's role does not permit the operation.
var ErrForbidden = errors.New("operation not permitted for this role")

// ErrInsufficientFunds indicates a withdrawal or transfer that would drive a balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSelfTransfer indicates a transfer where source and destination are the same account.
var ErrSelfTransfer = errors.New("cannot transfer to the same account")

// ErrAlreadyApproved indicates an approval attempt on a customer record that is not pending.
var ErrAlreadyApproved = errors.New("application already approved")

// ErrMismatchedCredentials indicates that an account number and customer ID do not identify the same record.
var ErrMismatchedCredentials = errors.New("account number and customer ID do not match")

// ErrPendingApproval indicates a login attempt on a customer application that has not been approved yet.
var ErrPendingApproval = errors.New("account is pending approval")
