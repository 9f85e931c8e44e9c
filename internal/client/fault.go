package client

import (
	"errors"
	"fmt"
)

// FaultCategory is the stable machine-readable classification of a failed
// boundary call.
type FaultCategory string

const (
	// FaultValidation means the input failed a schema check; the caller can
	// correct the input and retry.
	FaultValidation FaultCategory = "validation"
	// FaultNotFound means the referenced identity is absent.
	FaultNotFound FaultCategory = "not_found"
	// FaultTransport means the backend was unreachable or answered with an
	// unexpected status.
	FaultTransport FaultCategory = "transport"
	// FaultInternal means the backend failed unexpectedly.
	FaultInternal FaultCategory = "internal"
)

// Fault is the typed failure every transport call returns on a non-success
// outcome. Fields carries per-field reasons for validation faults.
type Fault struct {
	Category FaultCategory
	Message  string
	Fields   map[string]string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

func IsValidation(err error) bool { return hasCategory(err, FaultValidation) }
func IsNotFound(err error) bool   { return hasCategory(err, FaultNotFound) }
func IsTransport(err error) bool  { return hasCategory(err, FaultTransport) }
func IsInternal(err error) bool   { return hasCategory(err, FaultInternal) }

func hasCategory(err error, category FaultCategory) bool {
	var fault *Fault
	return errors.As(err, &fault) && fault.Category == category
}

func validationFault(message string, fields map[string]string) *Fault {
	return &Fault{Category: FaultValidation, Message: message, Fields: fields}
}
