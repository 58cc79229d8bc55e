package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatusString(t *testing.T) {
	tests := []struct {
		name   string
		status *CheckStatus
		want   string
	}{
		{name: "nil means no checks", status: nil, want: ""},
		{name: "passing", status: &CheckStatus{State: ChecksPassing}, want: "passing"},
		{name: "failing", status: &CheckStatus{State: ChecksFailing}, want: "failing"},
		{name: "pending", status: &CheckStatus{State: ChecksPending}, want: "pending"},
		{name: "skipped", status: &CheckStatus{State: ChecksSkipped}, want: "skipped"},
		{name: "unknown without detail", status: &CheckStatus{State: ChecksUnknown}, want: "unknown"},
		{
			name:   "unknown surfaces its inputs",
			status: &CheckStatus{State: ChecksUnknown, States: []string{"startup-failure", "success"}},
			want:   "unknown (startup-failure, success)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestCheckStatusIs(t *testing.T) {
	var nilStatus *CheckStatus
	assert.False(t, nilStatus.Is(ChecksPassing))

	status := &CheckStatus{State: ChecksFailing}
	assert.True(t, status.Is(ChecksFailing))
	assert.False(t, status.Is(ChecksPassing))
}

func TestIsMainline(t *testing.T) {
	for _, branch := range []string{"main", "master", "develop", "dev"} {
		assert.True(t, IsMainline(branch), branch)
	}
	assert.False(t, IsMainline("feature/retry"))
	assert.False(t, IsMainline("Main"))
	assert.False(t, IsMainline(""))
}
