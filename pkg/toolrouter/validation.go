package toolrouter

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// validateArguments checks a raw argument object against a compiled schema.
// Nil arguments validate as an empty object.
func validateArguments(schema *gojsonschema.Schema, arguments map[string]interface{}) error {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(arguments))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			details = append(details, verr.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidArguments, strings.Join(details, "; "))
	}

	return nil
}
