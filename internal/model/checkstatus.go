package model

import "strings"

// CheckState is the aggregate classification of a PR's check rollup
type CheckState int

const (
	ChecksPassing CheckState = iota
	ChecksFailing
	ChecksPending
	ChecksSkipped
	ChecksUnknown
)

// CheckStatus is the aggregate of all checks reported against a PR's head
// commit. A PR with no checks at all has no CheckStatus (nil pointer), which
// is distinct from ChecksSkipped (checks exist but none of them count).
//
// States carries the distinct effective check states that produced an
// unknown classification, so an unrecognized combination surfaces its raw
// inputs instead of being silently guessed at.
type CheckStatus struct {
	State  CheckState
	States []string // populated only for ChecksUnknown, sorted
}

func (c *CheckStatus) String() string {
	if c == nil {
		return ""
	}
	switch c.State {
	case ChecksPassing:
		return "passing"
	case ChecksFailing:
		return "failing"
	case ChecksPending:
		return "pending"
	case ChecksSkipped:
		return "skipped"
	default:
		if len(c.States) == 0 {
			return "unknown"
		}
		return "unknown (" + strings.Join(c.States, ", ") + ")"
	}
}

// Is reports whether the status is non-nil and in the given state
func (c *CheckStatus) Is(state CheckState) bool {
	return c != nil && c.State == state
}
