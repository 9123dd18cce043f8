package errors

import "net/http"

var (
	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrPointOfInterestNotFound = New(
		"POINT_OF_INTEREST_NOT_FOUND",
		"Point of interest not found",
		http.StatusNotFound,
	)

	ErrFileNotFound = New(
		"FILE_NOT_FOUND",
		"File not found",
		http.StatusNotFound,
	)

	ErrValidation = New(
		"VALIDATION_FAILED",
		"One or more validation errors occurred",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidPatch = New(
		"INVALID_PATCH",
		"Patch document could not be applied",
		http.StatusBadRequest,
	)

	ErrInvalidFile = New(
		"INVALID_FILE",
		"Invalid file",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Access to this resource is not allowed",
		http.StatusForbidden,
	)

	ErrNotAcceptable = New(
		"NOT_ACCEPTABLE",
		"Requested response format is not supported",
		http.StatusNotAcceptable,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
