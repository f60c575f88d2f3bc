package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrors converts binding failures into the field-keyed message map
// used in 400 responses. Non-validation failures (malformed JSON, wrong
// types) collapse into a single body-level message.
func bindingErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "invalid request body"
		return out
	}

	for _, fe := range verrs {
		field := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "gt", "gte":
			out[field] = field + " must be positive"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// jsonFieldName lowercases the leading letter so error keys match the JSON
// field names of the binding structs.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
