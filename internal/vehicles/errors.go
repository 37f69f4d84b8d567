package vehicles

import (
	"fmt"
	"net/http"
)

// Kind classifies a rule rejection.
type Kind string

const (
	KindInvalidLicenseFormat Kind = "InvalidLicenseFormat"
	KindInvalidIDFormat      Kind = "InvalidIdFormat"
	KindEmptyID              Kind = "EmptyId"
	KindDuplicateLicense     Kind = "DuplicateLicense"
	KindDuplicateID          Kind = "DuplicateId"
	KindNotFound             Kind = "NotFound"
	KindIllegalTransition    Kind = "IllegalTransition"
	KindQuotaExceeded        Kind = "QuotaExceeded"
	KindDeleteBlocked        Kind = "DeleteBlocked"
	KindStorageFailure       Kind = "StorageFailure"
)

// RuleError is a rejection produced by the rule engine. Nothing is
// transient: an operation either commits fully or fails with one of these.
type RuleError struct {
	Kind    Kind
	Message string

	// Populated for quota rejections only
	Current int
	Total   int
	Max     int
}

// Error implements the error interface
func (e *RuleError) Error() string {
	return e.Message
}

// HTTPStatus maps the rejection kind to an HTTP status code
func (e *RuleError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindStorageFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

var (
	ErrLicenseRequired = &RuleError{Kind: KindInvalidLicenseFormat, Message: "licensePlate is required"}

	ErrCreateLicenseFormat = &RuleError{Kind: KindInvalidLicenseFormat, Message: "Invalid licensePlate format. Use only uppercase letters, digits and hyphen (e.g. ABC-123 or ABC123)."}
	ErrUpdateLicenseFormat = &RuleError{Kind: KindInvalidLicenseFormat, Message: "Invalid licensePlate format. Use only uppercase letters, digits and hyphen."}
	ErrDuplicateLicense    = &RuleError{Kind: KindDuplicateLicense, Message: "licensePlate must be unique"}

	ErrCreateIDFormat = &RuleError{Kind: KindInvalidIDFormat, Message: "Invalid id provided. Id must be exactly 8 letters or digits (e.g. A1B2C3D4)."}
	ErrUpdateIDFormat = &RuleError{Kind: KindInvalidIDFormat, Message: "Invalid id format. Id must be exactly 8 letters or digits."}
	ErrEmptyID        = &RuleError{Kind: KindEmptyID, Message: "id cannot be empty"}
	ErrDuplicateID    = &RuleError{Kind: KindDuplicateID, Message: "id must be unique"}

	ErrVehicleNotFound = &RuleError{Kind: KindNotFound, Message: "Vehicle not found"}

	ErrMaintenanceExit = &RuleError{Kind: KindIllegalTransition, Message: "Vehicles in Maintenance can only move to Available"}
	ErrUnknownStatus   = &RuleError{Kind: KindIllegalTransition, Message: "Invalid status. Must be one of Available, InUse or Maintenance"}

	ErrDeleteBlocked = &RuleError{Kind: KindDeleteBlocked, Message: "Cannot delete vehicle while InUse or Maintenance"}

	ErrResetFailed = &RuleError{Kind: KindStorageFailure, Message: "Failed to reset data"}
	ErrSaveFailed  = &RuleError{Kind: KindStorageFailure, Message: "Failed to save vehicles"}
	ErrLoadFailed  = &RuleError{Kind: KindStorageFailure, Message: "Failed to load vehicles"}
)

// NewQuotaExceededError builds the quota rejection with the counts that
// feed the user-facing message.
func NewQuotaExceededError(current, total, max int) *RuleError {
	return &RuleError{
		Kind:    KindQuotaExceeded,
		Message: fmt.Sprintf("Maintenance quota reached: %d of %d vehicles currently in Maintenance (max allowed: %d)", current, total, max),
		Current: current,
		Total:   total,
		Max:     max,
	}
}
