package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorDisplayIdConflict is returned when the bounded regenerate-and-reinsert
// loop keeps losing to concurrent creations. Callers may retry the whole create.
var ErrorDisplayIdConflict = errors.New("display id conflict")

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}
