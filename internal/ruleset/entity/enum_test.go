package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   ApprovalStatus
		known    bool
		decision bool
	}{
		{status: ApprovalStatusPending, known: true, decision: false},
		{status: ApprovalStatusApproved, known: true, decision: true},
		{status: ApprovalStatusRejected, known: true, decision: true},
		{status: "approved", known: false, decision: false},
		{status: "", known: false, decision: false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.known, tt.status.IsKnown())
			assert.Equal(t, tt.decision, tt.status.IsDecision())
		})
	}
}

func TestNotificationType_IsKnown(t *testing.T) {
	t.Parallel()

	for _, nt := range NotificationTypes {
		assert.True(t, nt.IsKnown(), nt.String())
	}

	assert.Len(t, NotificationTypes, 8)
	assert.False(t, NotificationType("PROMOTION").IsKnown())
	assert.False(t, NotificationType("system_alert").IsKnown())
}
