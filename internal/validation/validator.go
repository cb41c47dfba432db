// Package validation checks candidate catalog entities against their field rules.
// Checks are pure: they never touch the store. Uniqueness needs persisted state and
// is enforced by the repository inside the write transaction.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"pokedex_server/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "length", validLength)
	mustRegister(v, "inrange", validRange)
	mustRegister(v, "poketype", func(fl validator.FieldLevel) bool {
		return models.IsPokeType(fl.Field().String())
	})
	mustRegister(v, "present", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterAlias("number_present", "required")
	v.RegisterAlias("reference", "gt=0")
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// parseBounds reads "lo..hi" parameters.
func parseBounds(param string) (int64, int64) {
	lo, hi, ok := strings.Cut(param, "..")
	if !ok {
		panic("validation: bad bounds " + param)
	}
	l, err1 := strconv.ParseInt(lo, 10, 64)
	h, err2 := strconv.ParseInt(hi, 10, 64)
	if err1 != nil || err2 != nil {
		panic("validation: bad bounds " + param)
	}
	return l, h
}

// validLength counts characters, not bytes.
func validLength(fl validator.FieldLevel) bool {
	lo, hi := parseBounds(fl.Param())
	n := int64(utf8.RuneCountInString(fl.Field().String()))
	return n >= lo && n <= hi
}

func validRange(fl validator.FieldLevel) bool {
	lo, hi := parseBounds(fl.Param())
	n := fl.Field().Int()
	return n >= lo && n <= hi
}

// Check validates any catalog model and returns the violations found, possibly none.
func Check(entity interface{}) Errors {
	errs := Errors{}
	err := validate.Struct(entity)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("base", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

// ValidatePokemon returns nil or the Errors found on p.
func ValidatePokemon(p *models.Pokemon) error {
	return Check(p).Err()
}

// ValidateMove returns nil or the Errors found on m.
func ValidateMove(m *models.Move) error {
	return Check(m).Err()
}

// ValidateItem returns nil or the Errors found on i.
func ValidateItem(i *models.Item) error {
	return Check(i).Err()
}

// ValidatePokeMove returns nil or the Errors found on pm.
func ValidatePokeMove(pm *models.PokeMove) error {
	return Check(pm).Err()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "present", "required":
		return "can't be blank"
	case "number_present":
		return "is not a number"
	case "reference":
		return "must exist"
	case "length":
		lo, hi := parseBounds(fe.Param())
		s, _ := fe.Value().(string)
		if int64(utf8.RuneCountInString(s)) < lo {
			return fmt.Sprintf("is too short (minimum is %s)", characters(lo))
		}
		return fmt.Sprintf("is too long (maximum is %s)", characters(hi))
	case "inrange":
		return "must be in " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "poketype":
		return fmt.Sprintf("'%v' is not a valid Pokemon type", fe.Value())
	default:
		return "is invalid"
	}
}

func characters(n int64) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}
