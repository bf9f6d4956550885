// Package task defines the records the dashboard consumes: scheduled
// tasks, plot and worker catalogs, and advisory suggestions. Field names
// follow the backend wire format. The rest of the program treats these as
// read-only inputs.
package task

// Task is a single scheduled field operation.
type Task struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Type               string   `json:"type,omitempty"`
	DateKey            string   `json:"task_date"`
	PlotID             string   `json:"plot_id"`
	Decision           Decision `json:"status"`
	AssignedWorkerID   string   `json:"assigned_worker_id,omitempty"`
	AssignedWorkerName string   `json:"assigned_worker_name,omitempty"`
	Description        string   `json:"description,omitempty"`
	Reason             string   `json:"reason,omitempty"`
	ProposedDateKey    string   `json:"proposed_date,omitempty"`
	OriginalDateKey    string   `json:"original_date,omitempty"`
}

// HasProposal reports whether a reschedule has been proposed and is still
// awaiting review.
func (t Task) HasProposal() bool {
	return t.ProposedDateKey != ""
}

// Plot is a cultivated plot of land.
type Plot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Worker is a field worker who can be assigned tasks.
type Worker struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Suggestion is one advisory item produced by the backend decision engine.
// The engine's ranking is trusted as-is; Type and Severity only classify
// the item for display.
type Suggestion struct {
	TaskID        string `json:"task_id"`
	TaskName      string `json:"task_name"`
	OriginalDate  string `json:"original_date,omitempty"`
	SuggestedDate string `json:"suggested_date,omitempty"`
	Type          string `json:"type"`
	Severity      string `json:"severity,omitempty"`
	Reason        string `json:"reason,omitempty"`
	AffectedBy    string `json:"affected_by,omitempty"`
}
