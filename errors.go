package mdcat

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrStackInit reports an attempt to initialize a nil FormatStack.
	ErrStackInit = errors.New("format stack: invalid handle")
	// ErrStackFull reports more than StackCapacity open formats.
	ErrStackFull = errors.New("format stack: full")
	// ErrStackEmpty reports a pop or peek with no open format.
	ErrStackEmpty = errors.New("format stack: empty")
)

// ContractError reports a marker that the format stack could not honor.
// Callers are expected to treat it as fatal; rendering state after a
// ContractError is unspecified.
type ContractError struct {
	Op     string
	Format Format
	Err    error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Format, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// OpenError reports an input that could not be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open '%s' (%v)", e.Name, reason(e.Err))
}

func (e *OpenError) Unwrap() error { return e.Err }

// reason drops the operation and path from filesystem errors so the name
// is only printed once.
func reason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
