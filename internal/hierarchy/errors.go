package hierarchy

import (
	"fmt"
	"strings"
)

// InvalidHierarchyError reports construction-time defects in a hierarchy
// definition. It is fatal: a malformed definition is a configuration bug,
// not a runtime condition.
type InvalidHierarchyError struct {
	Problems []string
}

func (e InvalidHierarchyError) Error() string {
	return fmt.Sprintf("invalid hierarchy: %s", strings.Join(e.Problems, "; "))
}

// NotFoundError reports a lookup against a name absent from the hierarchy.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("account %q not found", e.Name)
}

// UnknownAccountError reports a name that exists but is not valid for the
// requested use: a non-derived account asked for children, or a snapshot
// entry that is neither a leaf nor the balancing account.
type UnknownAccountError struct {
	Name string
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("unexpected account %q", e.Name)
}
