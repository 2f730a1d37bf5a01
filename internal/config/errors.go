package config

import (
	"fmt"
	"strings"
)

// UndefinedOptionError reports configuration keys a task requires but the
// merged mapping does not carry.
type UndefinedOptionError struct {
	Keys []string
}

// Error implements the error interface.
func (e *UndefinedOptionError) Error() string {
	return fmt.Sprintf("undefined option(s): %s", strings.Join(e.Keys, ", "))
}
