package textmine

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the loaded sheet.
type SchemaError struct {
	Sheet     string
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		missing[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Sprintf("missing required columns: %s; available columns: %s",
		strings.Join(missing, ", "), strings.Join(e.Available, ", "))
}

// Warning is a non-fatal condition the caller should confirm with the user.
type Warning string

// WarnNoKeywords is raised when every supplied keyword is blank.
const WarnNoKeywords Warning = "no keywords provided; the result only contains the identifier column"
