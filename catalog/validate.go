package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var httpMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}

func newValidator() *validator.Validate {
	v := validator.New()
	// Empty values are accepted: a function without a binding is still a
	// valid record, it is just not routable.
	v.RegisterValidation("httpmethod", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || isHTTPMethod(s)
	})
	v.RegisterValidation("urltemplate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || strings.HasPrefix(s, "/")
	})
	return v
}

func isHTTPMethod(s string) bool {
	for _, m := range httpMethods {
		if strings.EqualFold(s, m) {
			return true
		}
	}
	return false
}

// describeInvalid turns a validation error into a single line message.
func describeInvalid(err error) string {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Namespace()+": required")
		case "httpmethod":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not an HTTP method", fe.Namespace(), fe.Value()))
		case "urltemplate":
			msgs = append(msgs, fmt.Sprintf("%s: %q must start with /", fe.Namespace(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
