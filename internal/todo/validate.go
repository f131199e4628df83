package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rishbot91/todo-project/internal/model"
)

// Input carries the writable fields of a todo item as submitted by a caller.
// Create and update both take the full set (full-replace, not patch).
// Status is a pointer so an omitted status (defaults to OPEN) can be told
// apart from an explicit empty string (an invalid choice).
type Input struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      *string
	TagNames    []string
}

// Validate checks in against the business rules and returns every failing
// field at once, or nil when the input is clean. now is sampled once by the
// caller so the due-date check cannot flip mid-validation. The due-date rule
// is a write-time gate only: a stored due date that has since lapsed is not
// retroactively invalid.
func Validate(in Input, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Title) == "" {
		errs.add("title", MsgBlank)
	} else if utf8.RuneCountInString(in.Title) > model.MaxTitleLen {
		errs.add("title", maxLengthMsg(model.MaxTitleLen))
	}

	if strings.TrimSpace(in.Description) == "" {
		errs.add("description", MsgBlank)
	} else if utf8.RuneCountInString(in.Description) > model.MaxDescriptionLen {
		errs.add("description", maxLengthMsg(model.MaxDescriptionLen))
	}

	if in.Status != nil && !model.Status(*in.Status).Valid() {
		errs.add("status", fmt.Sprintf("%q is not a valid choice.", *in.Status))
	}

	if in.DueDate != nil && in.DueDate.Before(now) {
		errs.add("due_date", MsgPastDueDate)
	}

	validateTagNames(in.TagNames, errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateTagNames rejects duplicate names (exact, case-sensitive match),
// blank names, and names over the length limit. Every offending name is
// reported; the duplicate message appears once per submission. This runs
// before any storage interaction.
func validateTagNames(names []string, errs FieldErrors) {
	seen := make(map[string]bool, len(names))
	dupReported := false
	for _, name := range names {
		if seen[name] && !dupReported {
			errs.add("tags", MsgDuplicateTags)
			dupReported = true
		}
		seen[name] = true

		if strings.TrimSpace(name) == "" {
			errs.add("tags", MsgBlank)
		} else if utf8.RuneCountInString(name) > model.MaxTagNameLen {
			errs.add("tags", maxLengthMsg(model.MaxTagNameLen))
		}
	}
}

func maxLengthMsg(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}
