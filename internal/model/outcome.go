package model

// RestackOutcome records the result of one update-branch attempt during a
// restack run. Outcomes are grouped by root branch and preserve the stack's
// parent-before-child order.
type RestackOutcome struct {
	PR      PrInfo
	Updated bool
	Reason  string // set when Updated is false
}
