package engine

import "github.com/wanderkit/packlist/pkg/domain"

func promptRender(def *domain.ChecklistDefinition, sess *domain.Session) domain.RenderRequest {
	return domain.RenderRequest{
		Type: domain.RenderPromptItem,
		Payload: domain.PromptItem{
			ChecklistID: def.ID,
			Item:        def.Items[sess.Cursor],
			Index:       sess.Cursor + 1,
			Total:       len(def.Items),
			Actions:     domain.Dispositions(),
		},
	}
}

func editPromptRender(def *domain.ChecklistDefinition, sess *domain.Session, item domain.ItemDefinition) domain.RenderRequest {
	return domain.RenderRequest{
		Type: domain.RenderPromptItem,
		Payload: domain.PromptItem{
			ChecklistID: def.ID,
			Item:        item,
			Index:       itemIndex(def, item.FullName) + 1,
			Total:       len(def.Items),
			Editing:     true,
			Current:     sess.Responses[item.FullName],
			Actions:     domain.Dispositions(),
		},
	}
}

// summaryRender partitions responses by disposition. Partitions preserve
// catalog order, never response-insertion order; every answered item lands
// in exactly one partition, unanswered items in none.
func summaryRender(def *domain.ChecklistDefinition, sess *domain.Session) domain.RenderRequest {
	view := domain.SummaryView{
		ChecklistID: def.ID,
		Taken:       []domain.ItemDefinition{},
		Later:       []domain.ItemDefinition{},
		Skipped:     []domain.ItemDefinition{},
	}
	for _, item := range def.Items {
		switch sess.Responses[item.FullName] {
		case domain.DispositionTake:
			view.Taken = append(view.Taken, item)
		case domain.DispositionTakeLater:
			view.Later = append(view.Later, item)
		case domain.DispositionSkip:
			view.Skipped = append(view.Skipped, item)
		}
	}
	return domain.RenderRequest{Type: domain.RenderSummary, Payload: view}
}

func itemPickerRender(def *domain.ChecklistDefinition, sess *domain.Session) domain.RenderRequest {
	statuses := make([]domain.ItemStatus, 0, len(def.Items))
	for _, item := range def.Items {
		statuses = append(statuses, domain.ItemStatus{
			Item:        item,
			Disposition: sess.Responses[item.FullName],
			Answered:    sess.Answered(item.FullName),
		})
	}
	return domain.RenderRequest{
		Type:    domain.RenderItemPicker,
		Payload: domain.ItemPickerView{ChecklistID: def.ID, Items: statuses},
	}
}

func errorRender(kind domain.ErrorKind, ev domain.Event) domain.RenderRequest {
	detail := ""
	switch kind {
	case domain.ErrorUnknownChecklist:
		detail = ev.ChecklistID
	case domain.ErrorUnknownItem:
		detail = ev.Item
	case domain.ErrorInvalidDisposition:
		detail = ev.Disposition
	case domain.ErrorUnexpectedEvent:
		detail = string(ev.Type)
	}
	return domain.RenderRequest{
		Type:    domain.RenderError,
		Payload: domain.ErrorView{Kind: kind, Detail: detail},
	}
}

func itemIndex(def *domain.ChecklistDefinition, fullName string) int {
	for i, item := range def.Items {
		if item.FullName == fullName {
			return i
		}
	}
	return 0
}
