// Package errors provides the AppError type used across restkit for
// validation failures and demo server error responses. Each error carries a
// machine-readable code and the HTTP status it renders with.
package errors
