package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"venueos/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report fields by their json name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then
// performs validation on the struct. A body that does not decode is a bad
// request; a decoded struct violating its tags is a validation failure
// enumerating every offending field. Validation is all-or-nothing.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
	}

	return Struct(data)
}

// Struct validates an already-decoded struct against its validate tags.
func Struct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		return failure.BadRequest(err)
	}
	return failure.Validation(messages(verrs))
}
