package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

func TestForwardChain(t *testing.T) {
	steps := []struct {
		event Event
		from  enum.WorkflowStatus
		to    enum.WorkflowStatus
	}{
		{EventSubmit, enum.WorkflowStatusDraft, enum.WorkflowStatusSubmitted},
		{EventAccept, enum.WorkflowStatusSubmitted, enum.WorkflowStatusAccepted},
		{EventGrantPO, enum.WorkflowStatusAccepted, enum.WorkflowStatusPOGranted},
		{EventStartJob, enum.WorkflowStatusPOGranted, enum.WorkflowStatusJobInProgress},
		{EventCompleteJob, enum.WorkflowStatusJobInProgress, enum.WorkflowStatusJobCompleted},
		{EventGenerateInvoice, enum.WorkflowStatusJobCompleted, enum.WorkflowStatusInvoiceGenerated},
	}

	for _, step := range steps {
		next, err := Next(step.from, step.event, enum.UserRoleSales)
		require.NoError(t, err, "event %s", step.event)
		assert.Equal(t, step.to, next, "event %s", step.event)
	}
}

func TestReject(t *testing.T) {
	next, err := Next(enum.WorkflowStatusSubmitted, EventReject, enum.UserRoleSales)
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusRejected, next)
}

func TestRejectedIsTerminal(t *testing.T) {
	for _, event := range []Event{EventSubmit, EventAccept, EventGrantPO, EventStartJob, EventCompleteJob, EventGenerateInvoice} {
		_, err := Next(enum.WorkflowStatusRejected, event, enum.UserRoleSales)
		assert.Error(t, err, "event %s should not apply to Rejected", event)
	}
}

func TestSkippingStagesIsRejected(t *testing.T) {
	_, err := Next(enum.WorkflowStatusDraft, EventAccept, enum.UserRoleAdmin)
	assert.Error(t, err)

	_, err = Next(enum.WorkflowStatusSubmitted, EventGenerateInvoice, enum.UserRoleAdmin)
	assert.Error(t, err)
}

func TestUnlockRequiresAdmin(t *testing.T) {
	_, err := Next(enum.WorkflowStatusSubmitted, EventUnlock, enum.UserRoleSales)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	next, err := Next(enum.WorkflowStatusSubmitted, EventUnlock, enum.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusDraft, next)
}

func TestUnlockFromAnyLockedState(t *testing.T) {
	locked := []enum.WorkflowStatus{
		enum.WorkflowStatusSubmitted,
		enum.WorkflowStatusAccepted,
		enum.WorkflowStatusRejected,
		enum.WorkflowStatusPOGranted,
		enum.WorkflowStatusJobInProgress,
		enum.WorkflowStatusJobCompleted,
		enum.WorkflowStatusInvoiceGenerated,
	}

	for _, status := range locked {
		next, err := Next(status, EventUnlock, enum.UserRoleAdmin)
		require.NoError(t, err, "unlock from %s", status)
		assert.Equal(t, enum.WorkflowStatusDraft, next)
	}
}

func TestUnlockDraftIsRejected(t *testing.T) {
	_, err := Next(enum.WorkflowStatusDraft, EventUnlock, enum.UserRoleAdmin)
	assert.Error(t, err)
}

func TestUnknownEvent(t *testing.T) {
	_, err := Next(enum.WorkflowStatusDraft, Event("bogus"), enum.UserRoleAdmin)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestEventForStatus(t *testing.T) {
	event, err := EventForStatus(enum.WorkflowStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, EventAccept, event)

	event, err = EventForStatus(enum.WorkflowStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, EventUnlock, event)

	_, err = EventForStatus(enum.WorkflowStatus(99))
	assert.Error(t, err)
}
