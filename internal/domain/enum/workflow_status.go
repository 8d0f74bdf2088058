package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// WorkflowStatus represents the lifecycle status of a quotation
type WorkflowStatus int

const (
	WorkflowStatusDraft            WorkflowStatus = 0
	WorkflowStatusSubmitted        WorkflowStatus = 1
	WorkflowStatusAccepted         WorkflowStatus = 2
	WorkflowStatusRejected         WorkflowStatus = 3
	WorkflowStatusPOGranted        WorkflowStatus = 4
	WorkflowStatusJobInProgress    WorkflowStatus = 5
	WorkflowStatusJobCompleted     WorkflowStatus = 6
	WorkflowStatusInvoiceGenerated WorkflowStatus = 7
)

var workflowStatusNames = [...]string{
	"Draft",
	"Submitted",
	"Accepted",
	"Rejected",
	"PO Granted",
	"Job in Progress",
	"Job Completed",
	"Invoice Generated",
}

func (s WorkflowStatus) String() string {
	if int(s) < 0 || int(s) >= len(workflowStatusNames) {
		return "Draft"
	}
	return workflowStatusNames[s]
}

// IsLocked reports whether the quotation is read-only to non-admin roles.
// Every status except Draft is locked.
func (s WorkflowStatus) IsLocked() bool {
	return s != WorkflowStatusDraft
}

func (s WorkflowStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *WorkflowStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = WorkflowStatus(i)
		return nil
	}
	for i, name := range workflowStatusNames {
		if name == str {
			*s = WorkflowStatus(i)
			return nil
		}
	}
	return nil
}

func (s WorkflowStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *WorkflowStatus) Scan(value interface{}) error {
	if value == nil {
		*s = WorkflowStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = WorkflowStatus(v)
	case int:
		*s = WorkflowStatus(v)
	}
	return nil
}
