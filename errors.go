package rematch

import "fmt"

// PositionError reports a search start position outside the subject's
// [0, len] range.
type PositionError struct {
	Pos int // the requested position
	Len int // the subject length
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("rematch: position %d out of range [0, %d]", e.Pos, e.Len)
}

// GroupError reports access to a capture group that a match does not
// have, either by index or by name.
type GroupError struct {
	Index     int    // requested group index, -1 for named lookups
	Name      string // requested group name, "" for indexed lookups
	NumGroups int    // capture slots on the match, including group 0
}

func (e *GroupError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("rematch: no capture group named %q", e.Name)
	}
	return fmt.Sprintf("rematch: capture group %d out of range [0, %d)", e.Index, e.NumGroups)
}
