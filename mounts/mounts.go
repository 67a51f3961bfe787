package mounts

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is returned when a spec does not match the bind grammar.
type ParseError struct {
	Spec string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid bind grammar: %q", e.Spec)
}

// BindError reports a spec that could not be turned into a Bind.
type BindError struct {
	Spec string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("Error parsing Bind '%s'", e.Spec)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func errInvalidSpec(spec string, err error) error {
	return errors.Wrapf(err, "invalid volume specification: '%s'", spec)
}

func errReservedName(name string) error {
	return errors.Errorf("volume name %q cannot be a reserved word for Windows filenames", name)
}
