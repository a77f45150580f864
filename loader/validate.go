package loader

import (
	"fmt"
	"strings"

	"github.com/jalvik/palaver/engine/rules"
	"github.com/jalvik/palaver/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled templates for consistency.
func validate(templates []types.Template) error {
	ve := &ValidationError{}

	seen := map[string]bool{}
	for _, t := range templates {
		if t.ID == "" {
			ve.Errors = append(ve.Errors, "template with empty ID")
			continue
		}
		if seen[t.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate template ID %q", t.ID))
		}
		seen[t.ID] = true

		if !types.KnownTopic(t.Topic) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: unknown topic %q", t.ID, t.Topic))
		}
		if len(t.Lines) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: lines must not be empty", t.ID))
		}
		if t.CooldownTurns < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: negative cooldown", t.ID))
		}
		if t.MinInterRep > t.MaxInterRep {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: min_rep %d exceeds max_rep %d", t.ID, t.MinInterRep, t.MaxInterRep))
		}
		if t.SameFactionOnly && t.CrossFactionOnly {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: same_faction_only and cross_faction_only are mutually exclusive", t.ID))
		}
		if t.Predicate != nil && !rules.Known(t.Predicate.Name) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template %q: unknown predicate %q", t.ID, t.Predicate.Name))
		}
		for i, line := range t.Lines {
			if line.TurnDelay < 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"template %q: line %d has negative delay", t.ID, i))
			}
			if strings.TrimSpace(line.Text) == "" {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"template %q: line %d has empty text", t.ID, i))
			}
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
