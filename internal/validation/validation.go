// Package validation holds the inputs accepted by registry operations and
// the rules they are checked against before any storage access.
package validation

import (
	"errors"
	"fmt"
	"petregistry/pkg/serrors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FailedMessage is the message of every validation error.
const FailedMessage = "Validation failed."

// minNameLength is the minimum length of the name field pair checked by the
// name_pair rule.
const minNameLength = 3

// UserInput registers a user.
type UserInput struct {
	Email     string `json:"email"     validate:"email"`
	FirstName string `json:"firstName" validate:"name_pair=LastName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"  validate:"required,min=4"`
}

// PetTypeInput defines a pet type from existing property ids.
type PetTypeInput struct {
	Name       string   `json:"petTypeName" validate:"min=3"`
	Properties []string `json:"properties"  validate:"min=1"`
}

// PetPropertyInput defines a pet property.
type PetPropertyInput struct {
	Name         string `json:"propName"       validate:"min=3"`
	Value        string `json:"propValue"      validate:"digit"`
	Weight       string `json:"propWeight"     validate:"digit"`
	ValuePerTime string `json:"propValPerTime" validate:"numeric"`
}

// PetInput assigns a new pet of the given type to the caller.
type PetInput struct {
	Name      string `json:"petName"   validate:"min=3"`
	PetTypeID string `json:"petTypeId" validate:"required"`
}

// LoginInput carries credentials. Login does not apply any rule to it.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validator checks inputs against their declared rules. It is safe for
// concurrent use.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// registration of a static rule set cannot fail
	_ = v.RegisterValidation("digit", isDigit)
	_ = v.RegisterValidation("name_pair", isNamePair)

	return &Validator{v: v}
}

// isDigit accepts exactly one character in "0".."9".
func isDigit(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// isNamePair accepts the field when either it or the sibling named by the
// rule parameter is at least minNameLength characters long.
func isNamePair(fl validator.FieldLevel) bool {
	if utf8.RuneCountInString(fl.Field().String()) >= minNameLength {
		return true
	}

	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}

	return utf8.RuneCountInString(other.String()) >= minNameLength
}

// Validate returns one message per failing field, in declaration order. It
// returns nil when input satisfies all rules.
func (v *Validator) Validate(input any) []string {
	err := v.v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}

	return out
}

// Check is Validate as an error: an ErrValidation carrying the violations, or nil.
func (v *Validator) Check(input any) error {
	if msgs := v.Validate(input); len(msgs) > 0 {
		return serrors.WithData(serrors.ErrValidation, msgs, FailedMessage)
	}

	return nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "digit":
		return field + " must be a single digit between 0 and 9"
	case "numeric":
		return field + " must be numeric"
	case "name_pair":
		return fmt.Sprintf("firstName or lastName must be at least %d characters long", minNameLength)
	default:
		return field + " is invalid"
	}
}
