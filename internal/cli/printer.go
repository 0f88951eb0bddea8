package cli

import (
	"fmt"
	"strings"

	"github.com/wanderkit/packlist/internal/presentation/tui"
	"github.com/wanderkit/packlist/pkg/domain"
)

// FormatRender turns a rendering instruction into markdown for the
// terminal renderer.
func FormatRender(render domain.RenderRequest) string {
	switch payload := render.Payload.(type) {
	case domain.PromptItem:
		return formatPrompt(payload)
	case domain.SummaryView:
		return formatSummary(payload)
	case domain.ChecklistPickerView:
		return formatPicker(payload)
	case domain.ItemPickerView:
		return formatItems(payload)
	case domain.ErrorView:
		return formatError(payload)
	}
	return fmt.Sprintf("unhandled render instruction: %s", render.Type)
}

func formatPrompt(p domain.PromptItem) string {
	var b strings.Builder
	if p.Editing {
		fmt.Fprintf(&b, "## Edit: %s\n\n", p.Item.FullName)
		if p.Current != "" {
			fmt.Fprintf(&b, "Current: **%s**\n\n", label(p.Current))
		}
	} else {
		fmt.Fprintf(&b, "## %s? (%d/%d)\n\n", p.Item.FullName, p.Index, p.Total)
	}
	if p.Item.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Item.Description)
	}
	if p.Item.Link != "" {
		fmt.Fprintf(&b, "[where to buy](%s)\n\n", p.Item.Link)
	}
	labels := make([]string, 0, len(p.Actions))
	for _, d := range p.Actions {
		labels = append(labels, label(d))
	}
	fmt.Fprintf(&b, "_%s_\n", strings.Join(labels, " / "))
	return b.String()
}

func formatSummary(s domain.SummaryView) string {
	var b strings.Builder
	b.WriteString("# All done! Your lists:\n")
	section(&b, "In the backpack", s.Taken)
	section(&b, "Take later", s.Later)
	section(&b, "Not this trip", s.Skipped)
	b.WriteString("\n_edit <item> to change an answer, restart to pack again_\n")
	return b.String()
}

func section(b *strings.Builder, title string, items []domain.ItemDefinition) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_nothing here_\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item.FullName)
	}
}

func formatPicker(p domain.ChecklistPickerView) string {
	var b strings.Builder
	b.WriteString("# Which list are we packing?\n\n")
	if len(p.Checklists) == 0 {
		b.WriteString("_the catalog is empty_\n")
		return b.String()
	}
	for _, c := range p.Checklists {
		fmt.Fprintf(&b, "- **%s** — %s (%d items)\n", c.ID, c.Name, c.ItemCount)
	}
	b.WriteString("\n_type a checklist id to start_\n")
	return b.String()
}

func formatItems(p domain.ItemPickerView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.ChecklistID)
	for _, st := range p.Items {
		marker := tui.Badge(st.Disposition, st.Answered)
		fmt.Fprintf(&b, "- %s %s", marker, st.Item.FullName)
		if st.Answered {
			fmt.Fprintf(&b, " — %s", label(st.Disposition))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatError(e domain.ErrorView) string {
	switch e.Kind {
	case domain.ErrorUnknownChecklist:
		return fmt.Sprintf("There is no checklist %q. Type `list` to see the catalog.\n", e.Detail)
	case domain.ErrorUnknownItem:
		return fmt.Sprintf("%q is not on this checklist.\n", e.Detail)
	case domain.ErrorInvalidDisposition:
		return fmt.Sprintf("%q is not an answer I know. Try take, later or skip.\n", e.Detail)
	case domain.ErrorSessionNotFound:
		return "No session yet. Type `reset` to start.\n"
	default:
		return "Sorry, I don't understand that here. Type `reset` to start over.\n"
	}
}

func label(d domain.Disposition) string {
	switch d {
	case domain.DispositionTake:
		return "take"
	case domain.DispositionTakeLater:
		return "later"
	case domain.DispositionSkip:
		return "skip"
	}
	return string(d)
}
