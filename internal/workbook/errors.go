package workbook

import (
	"errors"
	"fmt"
)

// UserMessage is what the user sees for any load failure. A locked file is
// the common cause when the sheet is still open in a spreadsheet program.
const UserMessage = "Please close the output file and try again."

var (
	// ErrFileAccess matches every error returned by Load.
	ErrFileAccess = errors.New("workbook: cannot read kinematics file")

	// ErrSchema indicates the sheet does not hold three numeric columns.
	ErrSchema = errors.New("workbook: unexpected sheet layout")
)

// LoadError records why Load failed. It matches ErrFileAccess and the
// underlying cause with errors.Is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrFileAccess, e.Err}
}

// Message is the fixed text shown to the user.
func (e *LoadError) Message() string {
	return UserMessage
}
