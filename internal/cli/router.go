package cli

import (
	"strings"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Route maps a line of terminal input to an engine event, based on the
// session's current phase. The engine still validates everything; this
// only translates vocabulary, so unknown words are forwarded as-is and
// rejected there (mirroring the closed-set policy).
func Route(phase domain.Phase, line string) (domain.Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Event{}, false
	}

	word, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(word) {
	case "/reset", "reset":
		return domain.Reset(), true
	case "/restart", "restart":
		return domain.Restart(), true
	case "show", "list":
		return domain.ShowList(strings.TrimSpace(rest)), true
	case "edit":
		if item := strings.TrimSpace(rest); item != "" {
			return domain.EditSelect(item), true
		}
		return domain.EditList(), true
	}

	switch phase {
	case domain.PhaseSelecting:
		return domain.Choose(line), true
	case domain.PhaseAsking:
		return domain.Answer(disposition(line)), true
	case domain.PhaseEditing:
		return domain.SetStatus(disposition(line)), true
	case domain.PhaseReviewing:
		// Bare item names select for editing, like the original bot's
		// inline picker buttons.
		return domain.EditSelect(line), true
	}
	return domain.Event{}, false
}

// disposition expands terminal shorthands to the closed-set values.
// Unrecognized input passes through for the engine to reject.
func disposition(line string) string {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "take", "t", "yes", "y", "1":
		return string(domain.DispositionTake)
	case "later", "l", "2":
		return string(domain.DispositionTakeLater)
	case "skip", "s", "no", "n", "3":
		return string(domain.DispositionSkip)
	}
	return line
}
