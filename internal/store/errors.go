package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrCampaignNotFound is returned when no campaign in the addressed list has the given ID
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrNoteNotFound is returned when an insight note index is out of range
	ErrNoteNotFound = errors.New("insight note not found")
	// ErrEmptyNote is returned when an insight note has no content
	ErrEmptyNote = errors.New("insight note is empty")
)

// ValidationError lists the required fields a campaign is missing
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
}

var validate = validator.New()

func validateCampaign(c any) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}
