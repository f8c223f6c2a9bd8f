// Package shared provides common utility functions used across multiple
// packages in the rest-explorer codebase.
package shared

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

var pathSegmentReplacer = strings.NewReplacer("/", "-", "\\", "-", "..", "-")

// PathSegment turns a catalog id into a single file name element. Path
// separators and parent references are replaced so the result cannot leave
// its directory.
func PathSegment(id string) string {
	segment := pathSegmentReplacer.Replace(strings.TrimSpace(id))
	if segment == "" {
		return "unnamed"
	}
	return segment
}

// FirstNonBlank returns the first value that is not empty after trimming.
func FirstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// ErrorMessage returns the message of a builder error without its code or
// cause, falling back to Error() for other errors.
func ErrorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
