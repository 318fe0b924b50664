package booking

import (
	"errors"

	bookingRepo "fixly/database/repository/booking"
	"fixly/utils"
)

func errNotFound() error {
	return utils.NewServiceError(utils.CodeNotFound, "Booking not found")
}

func errNotAuthorized(action string) error {
	return utils.NewServiceError(utils.CodeForbidden, "Not authorized to "+action+" this booking")
}

func errInvalidTransition() error {
	return utils.NewServiceError(utils.CodeInvalidTransition, "Invalid status transition")
}

func errCannotCancel() error {
	return utils.NewServiceError(utils.CodeInvalidTransition, "Cannot cancel booking in current status")
}

func errConcurrentUpdate() error {
	return utils.NewServiceError(utils.CodeConflict, "Booking was modified concurrently, retry with its current status")
}

// storeErr folds a repository failure into the service taxonomy.
func storeErr(err error) error {
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return errNotFound()
	}
	return utils.NewServiceError(utils.CodeStoreFailure, "Server error")
}
