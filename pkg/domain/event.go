package domain

// EventType identifies an inbound user action.
type EventType string

const (
	// EventChoose selects a checklist and starts the asking walk.
	EventChoose EventType = "choose"
	// EventAnswer records the disposition for the item under the cursor.
	EventAnswer EventType = "answer"
	// EventEditSelect picks a previously answered item for overwrite.
	EventEditSelect EventType = "edit_select"
	// EventSetStatus overwrites the disposition of the item being edited.
	EventSetStatus EventType = "set_status"
	// EventRestart leaves the review and forces a new checklist selection.
	EventRestart EventType = "restart"
	// EventReset unconditionally wipes the session from any phase.
	EventReset EventType = "reset"
	// EventShowList renders a checklist's items without mutating the session.
	EventShowList EventType = "show_list"
	// EventEditList renders the item picker with current disposition markers.
	EventEditList EventType = "edit_list"
)

// Event is the engine's input vocabulary. Type selects the transition;
// the remaining fields carry its argument, unused ones stay empty.
// Disposition is a raw string on purpose: validation against the closed
// set happens inside the engine, not in the transport adapter.
type Event struct {
	Type        EventType `json:"type"`
	ChecklistID string    `json:"checklist_id,omitempty"`
	Item        string    `json:"item,omitempty"`
	Disposition string    `json:"disposition,omitempty"`
}

// Choose builds a checklist-selection event.
func Choose(checklistID string) Event {
	return Event{Type: EventChoose, ChecklistID: checklistID}
}

// Answer builds an answer event for the item under the cursor.
func Answer(disposition string) Event {
	return Event{Type: EventAnswer, Disposition: disposition}
}

// EditSelect builds an event picking an item for overwrite.
func EditSelect(item string) Event {
	return Event{Type: EventEditSelect, Item: item}
}

// SetStatus builds an overwrite event for the item being edited.
func SetStatus(disposition string) Event {
	return Event{Type: EventSetStatus, Disposition: disposition}
}

// Restart builds a restart event.
func Restart() Event { return Event{Type: EventRestart} }

// Reset builds a hard-reset event.
func Reset() Event { return Event{Type: EventReset} }

// ShowList builds a read-only listing event. The checklist ID may be empty
// when a checklist is already active.
func ShowList(checklistID string) Event {
	return Event{Type: EventShowList, ChecklistID: checklistID}
}

// EditList builds a read-only item-picker event.
func EditList() Event { return Event{Type: EventEditList} }
