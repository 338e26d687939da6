package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the allowed_domain and trimmed rules on gin's
// validator and makes field errors report JSON names. An empty allow-list accepts every
// domain. It must run before any request is bound.
func RegisterValidators(allowedDomains []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("trimmed", trimmed); err != nil {
		return err
	}
	return v.RegisterValidation("allowed_domain", allowedDomain(allowedDomains))
}

// trimmed rejects values with leading or trailing whitespace so length
// bounds apply to exactly what is stored.
func trimmed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}

func allowedDomain(domains []string) validator.Func {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		allowed[strings.ToLower(d)] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		if len(allowed) == 0 {
			return true
		}
		email := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		at := strings.LastIndex(email, "@")
		if at < 0 {
			return false
		}
		_, ok := allowed[email[at+1:]]
		return ok
	}
}

// validationMessage turns a binding error into a client-facing sentence.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "trimmed":
		return fmt.Sprintf("%s must not start or end with whitespace", field)
	case "allowed_domain":
		return fmt.Sprintf("%s domain is not allowed", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "timezone":
		return fmt.Sprintf("%s must be a valid IANA timezone", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
