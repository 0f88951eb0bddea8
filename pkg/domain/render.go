package domain

// RenderType tags the rendering instruction a transition produced.
type RenderType string

const (
	// RenderPromptItem asks the host to present one item with the action set.
	// Payload: PromptItem
	RenderPromptItem RenderType = "PROMPT_ITEM"

	// RenderSummary asks the host to show the three-way partitioned summary.
	// Payload: SummaryView
	RenderSummary RenderType = "SHOW_SUMMARY"

	// RenderChecklistPicker asks the host to present the catalog.
	// Payload: ChecklistPickerView
	RenderChecklistPicker RenderType = "SHOW_CHECKLIST_PICKER"

	// RenderItemPicker asks the host to present all items with their
	// current disposition markers.
	// Payload: ItemPickerView
	RenderItemPicker RenderType = "SHOW_ITEM_PICKER"

	// RenderError asks the host to report a rejected event.
	// Payload: ErrorView
	RenderError RenderType = "SHOW_ERROR"
)

// RenderRequest is the tagged instruction handed to the render adapter.
// The engine never performs I/O; the host decides how (and whether) to
// turn this into outbound messages and buttons.
type RenderRequest struct {
	Type    RenderType `json:"type"`
	Payload any        `json:"payload"`
}

// PromptItem describes a single-item prompt.
type PromptItem struct {
	ChecklistID string         `json:"checklist_id"`
	Item        ItemDefinition `json:"item"`
	// Index and Total locate the prompt within the walk (1-based for display).
	Index int `json:"index"`
	Total int `json:"total"`
	// Editing marks a point overwrite rather than the sequential walk.
	Editing bool `json:"editing,omitempty"`
	// Current is the previously recorded disposition while editing.
	Current Disposition `json:"current,omitempty"`
	// Actions is the closed disposition set, in presentation order.
	Actions []Disposition `json:"actions"`
}

// SummaryView is the completed-walk summary, partitioned by disposition.
// Each partition preserves catalog order; every answered item appears in
// exactly one partition, unanswered items in none.
type SummaryView struct {
	ChecklistID string           `json:"checklist_id"`
	Taken       []ItemDefinition `json:"taken"`
	Later       []ItemDefinition `json:"later"`
	Skipped     []ItemDefinition `json:"skipped"`
}

// ChecklistPickerView lists the catalog for selection.
type ChecklistPickerView struct {
	Checklists []ChecklistSummary `json:"checklists"`
}

// ItemStatus pairs an item with its recorded disposition, if any.
type ItemStatus struct {
	Item        ItemDefinition `json:"item"`
	Disposition Disposition    `json:"disposition,omitempty"`
	Answered    bool           `json:"answered"`
}

// ItemPickerView lists all items of a checklist with disposition markers,
// in catalog order.
type ItemPickerView struct {
	ChecklistID string       `json:"checklist_id"`
	Items       []ItemStatus `json:"items"`
}

// ErrorKind classifies a rejected event.
type ErrorKind string

const (
	ErrorUnknownChecklist   ErrorKind = "unknown_checklist"
	ErrorUnknownItem        ErrorKind = "unknown_item"
	ErrorInvalidDisposition ErrorKind = "invalid_disposition"
	ErrorSessionNotFound    ErrorKind = "not_found"
	ErrorUnexpectedEvent    ErrorKind = "unexpected_event"
)

// ErrorView reports a rejected event. The session is never mutated when
// this is produced; the adapter owns the user-facing copy.
type ErrorView struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}
