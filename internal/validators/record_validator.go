package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/avelkin/courses-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping); course updates, for example, validate
// only the fields the request actually carries.
const (
	// FieldFirstName targets the user's given name.
	FieldFirstName = "firstName"

	// FieldLastName targets the user's family name.
	FieldLastName = "lastName"

	// FieldEmailAddress targets the user's unique login email.
	FieldEmailAddress = "emailAddress"

	// FieldPassword targets the user's plaintext password on registration.
	FieldPassword = "password"

	// FieldTitle targets the course title.
	FieldTitle = "title"

	// FieldDescription targets the course description.
	FieldDescription = "description"
)

// Validation messages are user-facing contract text and must be reproduced
// exactly, including the historical wording of the password message.
const (
	MsgFirstNameRequired = "A first name is required"
	MsgFirstNameEmpty    = "Please provide a first name"
	MsgLastNameRequired  = "A last name is required"
	MsgLastNameEmpty     = "Please provide a last name"
	MsgEmailRequired     = "An email is required"
	MsgEmailInvalid      = "Please provide a valid email"
	MsgEmailTaken        = "The email entered already exists, please try again"
	MsgPasswordRequired  = "A password is required"
	MsgPasswordEmpty     = "Please provide a password name"
	MsgTitleRequired     = "A title is required"
	MsgTitleEmpty        = "Please provide a title"
	MsgDescriptionRequired = "A description is required"
	MsgDescriptionEmpty    = "Please provide a description"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RecordValidator implements the Validator interface for the inbound
// request bodies of both API resources: models.UserInput and
// models.CourseInput. Both value and pointer forms are accepted.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.UserInput / *models.UserInput
//   - models.CourseInput / *models.CourseInput
//
// Returns ErrUnsupportedType if obj does not match any known model,
// a *ValidationError carrying the ordered field messages when validation
// fails, or nil when the object is valid. Optional fields restrict
// validation to the named subset; when omitted, all fields of the type are
// validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserInput:
		return v.validateUserInput(ctx, value, fields...)
	case *models.UserInput:
		return v.validateUserInput(ctx, *value, fields...)

	case models.CourseInput:
		return v.validateCourseInput(ctx, value, fields...)
	case *models.CourseInput:
		return v.validateCourseInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUserInput checks the registration body field by field, in the
// declared field order, collecting every message rather than stopping at
// the first failure.
//
// Default validated fields (when none specified):
// FirstName, LastName, EmailAddress, Password.
func (v *RecordValidator) validateUserInput(_ context.Context, user models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmailAddress, FieldPassword}
	}

	var messages []string
	for _, field := range fields {
		switch field {
		case FieldFirstName:
			messages = appendRequiredOrEmpty(messages, user.FirstName, MsgFirstNameRequired, MsgFirstNameEmpty)
		case FieldLastName:
			messages = appendRequiredOrEmpty(messages, user.LastName, MsgLastNameRequired, MsgLastNameEmpty)
		case FieldEmailAddress:
			switch {
			case user.EmailAddress == nil:
				messages = append(messages, MsgEmailRequired)
			case !emailPattern.MatchString(*user.EmailAddress):
				messages = append(messages, MsgEmailInvalid)
			}
		case FieldPassword:
			messages = appendRequiredOrEmpty(messages, user.Password, MsgPasswordRequired, MsgPasswordEmpty)
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// validateCourseInput checks a course body. With no explicit field scope
// every required field is checked (creation); updates pass only the fields
// present in the request, so absent fields never trip the required check.
//
// Default validated fields (when none specified): Title, Description.
func (v *RecordValidator) validateCourseInput(_ context.Context, course models.CourseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	var messages []string
	for _, field := range fields {
		switch field {
		case FieldTitle:
			messages = appendRequiredOrEmpty(messages, course.Title, MsgTitleRequired, MsgTitleEmpty)
		case FieldDescription:
			messages = appendRequiredOrEmpty(messages, course.Description, MsgDescriptionRequired, MsgDescriptionEmpty)
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// appendRequiredOrEmpty appends requiredMsg when the field is absent and
// emptyMsg when it is present but blank.
func appendRequiredOrEmpty(messages []string, field *string, requiredMsg, emptyMsg string) []string {
	switch {
	case field == nil:
		return append(messages, requiredMsg)
	case strings.TrimSpace(*field) == "":
		return append(messages, emptyMsg)
	}
	return messages
}
