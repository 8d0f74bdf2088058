// Package workflow defines the quotation lifecycle as an explicit finite
// state machine. All status changes flow through the transition table so
// authorization and audit side effects stay in one place instead of being
// scattered across handlers.
package workflow

import (
	"fmt"

	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

// Event is a workflow action applied to a quotation.
type Event string

const (
	EventSubmit          Event = "submit"
	EventAccept          Event = "accept"
	EventReject          Event = "reject"
	EventGrantPO         Event = "grant_po"
	EventStartJob        Event = "start_job"
	EventCompleteJob     Event = "complete_job"
	EventGenerateInvoice Event = "generate_invoice"
	EventUnlock          Event = "unlock"
)

type transition struct {
	from enum.WorkflowStatus
	to   enum.WorkflowStatus
	// adminOnly transitions require elevated authority.
	adminOnly bool
}

// The forward chain:
// Draft -> Submitted -> {Accepted | Rejected} -> PO Granted ->
// Job in Progress -> Job Completed -> Invoice Generated.
// Rejected is terminal apart from the admin unlock, which is the only
// backward edge and resets any locked state to Draft.
var transitions = map[Event][]transition{
	EventSubmit: {
		{from: enum.WorkflowStatusDraft, to: enum.WorkflowStatusSubmitted},
	},
	EventAccept: {
		{from: enum.WorkflowStatusSubmitted, to: enum.WorkflowStatusAccepted},
	},
	EventReject: {
		{from: enum.WorkflowStatusSubmitted, to: enum.WorkflowStatusRejected},
	},
	EventGrantPO: {
		{from: enum.WorkflowStatusAccepted, to: enum.WorkflowStatusPOGranted},
	},
	EventStartJob: {
		{from: enum.WorkflowStatusPOGranted, to: enum.WorkflowStatusJobInProgress},
	},
	EventCompleteJob: {
		{from: enum.WorkflowStatusJobInProgress, to: enum.WorkflowStatusJobCompleted},
	},
	EventGenerateInvoice: {
		{from: enum.WorkflowStatusJobCompleted, to: enum.WorkflowStatusInvoiceGenerated},
	},
}

// Next resolves the target status for applying event to the current
// status under the acting role. Unknown or disallowed transitions return
// an error naming the precondition that failed; nothing is mutated here.
func Next(current enum.WorkflowStatus, event Event, role enum.UserRole) (enum.WorkflowStatus, error) {
	if event == EventUnlock {
		if !role.IsAdmin() {
			return current, apperror.NewForbiddenError("only an admin can unlock an archived quotation")
		}
		if !current.IsLocked() {
			return current, apperror.NewBadRequestError("quotation is already a draft")
		}
		return enum.WorkflowStatusDraft, nil
	}

	candidates, ok := transitions[event]
	if !ok {
		return current, apperror.NewBadRequestError(fmt.Sprintf("unknown workflow event %q", event))
	}

	for _, t := range candidates {
		if t.from != current {
			continue
		}
		if t.adminOnly && !role.IsAdmin() {
			return current, apperror.NewForbiddenError("this transition requires an admin")
		}
		return t.to, nil
	}

	return current, apperror.NewBadRequestError(
		fmt.Sprintf("cannot apply %q to a quotation in status %q", event, current))
}

// EventForStatus maps a requested target status to the workflow event
// that reaches it, for callers that speak in statuses rather than events.
func EventForStatus(target enum.WorkflowStatus) (Event, error) {
	switch target {
	case enum.WorkflowStatusSubmitted:
		return EventSubmit, nil
	case enum.WorkflowStatusAccepted:
		return EventAccept, nil
	case enum.WorkflowStatusRejected:
		return EventReject, nil
	case enum.WorkflowStatusPOGranted:
		return EventGrantPO, nil
	case enum.WorkflowStatusJobInProgress:
		return EventStartJob, nil
	case enum.WorkflowStatusJobCompleted:
		return EventCompleteJob, nil
	case enum.WorkflowStatusInvoiceGenerated:
		return EventGenerateInvoice, nil
	case enum.WorkflowStatusDraft:
		return EventUnlock, nil
	default:
		return "", apperror.NewBadRequestError(fmt.Sprintf("unknown target status %q", target))
	}
}
