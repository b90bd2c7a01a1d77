package boundary

import "fmt"

// DecodeError reports a host value that could not be decoded into a typed
// input. Side names the argument ("left" or "right") for two-input calls and
// is empty otherwise.
type DecodeError struct {
	Side string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid %s input: %v", e.Side, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a result that could not be represented as a host value.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
