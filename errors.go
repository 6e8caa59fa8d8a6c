package gear

import (
	"errors"
	"fmt"
)

// ErrInvalidParam is wrapped by every parameter validation error.
var ErrInvalidParam = errors.New("invalid gear parameter")

// ParamError describes a rejected parameter value.
type ParamError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("gear: %s=%g: %s", e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParam }

func paramErr(param string, v float64, reason string) error {
	return &ParamError{Param: param, Value: v, Reason: reason}
}
