package validate

import (
	"fmt"

	val "github.com/go-playground/validator/v10"
)

var messageFormats = map[string]string{
	"required": "%s is required",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"email":    "%s must be a valid email address",
	"oneof":    "%s must be one of %s",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
}

func messages(verrs val.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe val.FieldError) string {
	format, ok := messageFormats[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag())
	}
	if fe.Param() != "" {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}
	return fmt.Sprintf(format, fe.Field())
}
