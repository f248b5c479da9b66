package validation

import (
	"errors"
	"html"
	"reflect"
	"strings"
	"sync"

	"github.com/dangerclosesec/clubmap/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	strictPolicy = bluemonday.StrictPolicy()
)

// Validator returns the shared request validator. Field names in errors are
// taken from json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs tag validation on v and reports every failing field.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.NewValidationError(fieldPath(fe), describe(fe)))
	}
	return out
}

// maxSanitizePasses bounds how many layers of entity encoding SanitizeText
// peels off.
const maxSanitizePasses = 8

// SanitizeText strips all markup from user supplied text and trims it. The
// policy escapes what it keeps, so entities are decoded again to store plain
// text. Decoding can expose encoded markup, so the two steps repeat until the
// text stops changing. Input still changing after maxSanitizePasses is kept
// in its escaped form.
func SanitizeText(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		clean := html.UnescapeString(strictPolicy.Sanitize(s))
		if clean == s {
			return strings.TrimSpace(clean)
		}
		s = clean
	}
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeList applies SanitizeText to each entry and drops empty results.
func SanitizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if clean := SanitizeText(item); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// fieldPath joins the json names along the namespace. The top-level type is
// dropped, as is any segment still carrying its Go name, which is how
// embedded structs without a json name show up.
func fieldPath(fe validator.FieldError) string {
	names := strings.Split(fe.Namespace(), ".")
	goNames := strings.Split(fe.StructNamespace(), ".")
	if len(names) != len(goNames) || len(names) < 2 {
		return fe.Field()
	}

	last := len(names) - 1
	kept := make([]string, 0, len(names)-1)
	for i := 1; i < last; i++ {
		if names[i] == goNames[i] {
			continue
		}
		kept = append(kept, names[i])
	}
	kept = append(kept, names[last])
	return strings.Join(kept, ".")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
