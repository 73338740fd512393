package bedrock

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable reports that the foundation-model listing
	// call failed; callers get an empty catalog plus this error.
	ErrCatalogUnavailable = errors.New("model catalog unavailable")

	// ErrUnsupportedModel reports a model id outside the supported
	// provider families. It is an input-validation failure, not a
	// remote one.
	ErrUnsupportedModel = errors.New("model not supported")
)

// ErrorKind classifies a failed model invocation by its remote cause.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindValidation
	KindAccessDenied
)

// InvokeError is a failed call to the inference service, normalized from
// the transport response. It never escapes the package as a raw HTTP
// error.
type InvokeError struct {
	Kind    ErrorKind
	ModelID string
	Message string
}

func (e *InvokeError) Error() string {
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("validation error invoking %s: %s", e.ModelID, e.Message)
	case KindAccessDenied:
		return fmt.Sprintf("access denied invoking %s: %s", e.ModelID, e.Message)
	default:
		return fmt.Sprintf("error invoking %s: %s", e.ModelID, e.Message)
	}
}

// Hint returns an actionable suggestion for display. Empty when there is
// nothing useful to say.
func (e *InvokeError) Hint() string {
	switch e.Kind {
	case KindValidation:
		return "This model may require inference profiles or may not be available in your region. Try another model from the list."
	case KindAccessDenied:
		return "Verify that your account has access to this model in Amazon Bedrock."
	default:
		return ""
	}
}
