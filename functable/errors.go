package functable

import "fmt"

// UnsupportedCallError is returned when no function is registered under the
// name with the requested number of arguments
type UnsupportedCallError struct {
	Name    string
	NumArgs int
}

func (e *UnsupportedCallError) Error() string {
	return fmt.Sprintf("unsupported function: '%s' with %d args", e.Name, e.NumArgs)
}
