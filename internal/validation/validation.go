// Package validation wraps go-playground/validator with the form rules used
// by the backoffice pages. Errors are reported per JSON field name so they
// line up with the inputs that produced them.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator checks drafts against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// Violation is one failed rule on one field.
type Violation struct {
	// Path is the JSON path, e.g. "nombre" or "detalleCompras[1].cantidad".
	Path string
	// Field is the last JSON segment of Path.
	Field string
	// Tag is the rule that failed, e.g. "nonblank" or "min".
	Tag string
	// Param is the rule parameter, e.g. "7" for min=7.
	Param string
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "nonblank", isNonBlank)
	mustRegister(v, "personname", isPersonName)
	mustRegister(v, "digits", isDigits)
	mustRegister(v, "decimal", isDecimal)
	mustRegister(v, "positive", isPositive)
	mustRegister(v, "int64", isInt64)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Check validates every field of s and returns all violations in field order.
// An empty result means s is valid.
func (v *Validator) Check(s any) []Violation {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Path: "", Tag: "invalid"}}
	}
	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{
			Path:  trimRoot(fe.Namespace()),
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// trimRoot drops the struct type name validator prefixes namespaces with.
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func isNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// IsPersonName reports whether s holds only letters (any script, accents
// included) and spaces.
func IsPersonName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isPersonName(fl validator.FieldLevel) bool {
	return IsPersonName(fl.Field().String())
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDigits(fl validator.FieldLevel) bool {
	return IsDigits(fl.Field().String())
}

func isDecimal(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.Count(s, ".") > 1 {
		return false
	}
	_, err := decimal.NewFromString(s)
	return err == nil && !strings.ContainsAny(s, "eE+-")
}

// int64 accepts digit strings that fit a signed 64-bit integer.
func isInt64(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil
}

// positive accepts digit strings greater than zero.
func isPositive(fl validator.FieldLevel) bool {
	s := strings.TrimLeft(fl.Field().String(), "0")
	return s != "" && IsDigits(s)
}
