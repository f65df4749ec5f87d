package quote

import "fmt"

// SelectionViolationError signals an addon selection outside the group's
// [min,max] bounds.
type SelectionViolationError struct {
	GroupName string
	Reason    string
}

func (e *SelectionViolationError) Error() string {
	return fmt.Sprintf("addon group %q: %s", e.GroupName, e.Reason)
}
