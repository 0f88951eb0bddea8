package engine

import (
	"errors"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Each transition handler mutates the already-cloned session and returns
// the render instruction for the new state. A non-empty ErrorKind means
// the event was rejected and the mutation must be discarded by the caller.
// The error return is reserved for catalog infrastructure failures.

func (e *Engine) choose(sess *domain.Session, checklistID string) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseSelecting {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}

	def, kind, err := e.lookup(checklistID)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}

	sess.ActiveChecklistID = def.ID
	sess.Cursor = 0
	sess.Responses = make(map[string]domain.Disposition)

	// Zero items: the walk is complete before it starts.
	if len(def.Items) == 0 {
		sess.Phase = domain.PhaseReviewing
		return summaryRender(def, sess), "", nil
	}

	sess.Phase = domain.PhaseAsking
	return promptRender(def, sess), "", nil
}

func (e *Engine) answer(sess *domain.Session, rawDisposition string) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseAsking {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}

	disposition, parseErr := domain.ParseDisposition(rawDisposition)
	if parseErr != nil {
		return domain.RenderRequest{}, domain.ErrorInvalidDisposition, nil
	}

	def, kind, err := e.lookup(sess.ActiveChecklistID)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}

	// Phase invariant guarantees Cursor < len(items) here.
	sess.Responses[def.Items[sess.Cursor].FullName] = disposition
	sess.Cursor++

	if sess.Cursor == len(def.Items) {
		sess.Phase = domain.PhaseReviewing
		return summaryRender(def, sess), "", nil
	}
	return promptRender(def, sess), "", nil
}

func (e *Engine) editSelect(sess *domain.Session, item string) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseReviewing {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}

	def, kind, err := e.lookup(sess.ActiveChecklistID)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}

	picked, ok := def.Item(item)
	if !ok {
		return domain.RenderRequest{}, domain.ErrorUnknownItem, nil
	}

	sess.Phase = domain.PhaseEditing
	sess.EditingItem = picked.FullName
	return editPromptRender(def, sess, picked), "", nil
}

func (e *Engine) setStatus(sess *domain.Session, rawDisposition string) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseEditing {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}

	disposition, parseErr := domain.ParseDisposition(rawDisposition)
	if parseErr != nil {
		return domain.RenderRequest{}, domain.ErrorInvalidDisposition, nil
	}

	def, kind, err := e.lookup(sess.ActiveChecklistID)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}

	// Point overwrite; always returns to reviewing, whatever was there before.
	sess.Responses[sess.EditingItem] = disposition
	sess.EditingItem = ""
	sess.Phase = domain.PhaseReviewing
	return summaryRender(def, sess), "", nil
}

func (e *Engine) restart(sess *domain.Session) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseReviewing && sess.Phase != domain.PhaseEditing {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}
	// Restart clears the checklist selection: the multi-checklist policy,
	// see DESIGN.md on the divergent source variants.
	sess.ResetProgress()
	return e.pickerRender()
}

func (e *Engine) reset(sess *domain.Session) (domain.RenderRequest, domain.ErrorKind, error) {
	sess.ResetProgress()
	return e.pickerRender()
}

// showList renders a checklist read-only: the active one, or an explicit
// ID while nothing is active. Never mutates the session.
func (e *Engine) showList(sess *domain.Session, checklistID string) (domain.RenderRequest, domain.ErrorKind, error) {
	id := checklistID
	if id == "" {
		id = sess.ActiveChecklistID
	}
	if id == "" {
		return domain.RenderRequest{}, domain.ErrorUnknownChecklist, nil
	}

	def, kind, err := e.lookup(id)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}
	return itemPickerRender(def, sess), "", nil
}

func (e *Engine) editList(sess *domain.Session) (domain.RenderRequest, domain.ErrorKind, error) {
	if sess.Phase != domain.PhaseReviewing && sess.Phase != domain.PhaseEditing {
		return domain.RenderRequest{}, domain.ErrorUnexpectedEvent, nil
	}

	def, kind, err := e.lookup(sess.ActiveChecklistID)
	if kind != "" || err != nil {
		return domain.RenderRequest{}, kind, err
	}
	return itemPickerRender(def, sess), "", nil
}

// lookup resolves a checklist, mapping the catalog's not-found sentinel to
// a rejection and everything else to an infrastructure error.
func (e *Engine) lookup(id string) (*domain.ChecklistDefinition, domain.ErrorKind, error) {
	def, err := e.catalog.GetChecklist(id)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownChecklist) {
			return nil, domain.ErrorUnknownChecklist, nil
		}
		return nil, "", err
	}
	return def, "", nil
}

func (e *Engine) pickerRender() (domain.RenderRequest, domain.ErrorKind, error) {
	summaries, err := e.catalog.ListChecklists()
	if err != nil {
		return domain.RenderRequest{}, "", err
	}
	return domain.RenderRequest{
		Type:    domain.RenderChecklistPicker,
		Payload: domain.ChecklistPickerView{Checklists: summaries},
	}, "", nil
}
