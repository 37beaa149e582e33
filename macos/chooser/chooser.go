package chooser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spachava753/duh/macos/script"
)

// ListInput configures FromList. Items is required; every other field is
// optional and keeps the platform default when absent.
type ListInput struct {
	// Items are the candidate values. Mixed scalar types are allowed;
	// each item embeds via its textual form. Required, non-empty.
	Items []any

	// Title sets the chooser window title.
	Title string

	// Prompt sets the prompt text above the list.
	Prompt string

	// DefaultItems preselects matching candidates.
	DefaultItems []any

	// OKLabel relabels the OK button.
	OKLabel string

	// CancelLabel relabels the Cancel button.
	CancelLabel string

	// Multiple allows selecting more than one item.
	Multiple *bool

	// EmptyAllowed allows confirming with nothing selected.
	EmptyAllowed *bool

	// App names the application that should present the chooser.
	App string
}

// FromList presents a list chooser and returns the chosen items as text, in
// list order. Cancellation returns script.ErrCancelled. Confirming an empty
// selection (when EmptyAllowed) returns an empty slice.
func FromList(in ListInput) ([]string, error) {
	lines, err := buildFromList(in)
	if err != nil {
		return nil, err
	}
	out, err := script.Run(lines)
	if err != nil {
		return nil, err
	}
	return parseItems(out), nil
}

// parseItems splits FieldSep-joined harness output into the chosen items.
// Empty output means an empty confirmed selection.
func parseItems(out string) []string {
	if out == "" {
		return []string{}
	}
	return strings.Split(out, script.FieldSep)
}

func buildFromList(in ListInput) ([]string, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("chooser: items are required")
	}

	items, err := script.List(in.Items)
	if err != nil {
		return nil, fmt.Errorf("chooser: items: %w", err)
	}
	expr := script.Command("choose from list", items)
	if in.Title != "" {
		expr.Clause("with title", script.String(in.Title))
	}
	if in.Prompt != "" {
		expr.Clause("with prompt", script.String(in.Prompt))
	}
	if len(in.DefaultItems) > 0 {
		defaults, err := script.List(in.DefaultItems)
		if err != nil {
			return nil, fmt.Errorf("chooser: default items: %w", err)
		}
		expr.Clause("default items", defaults)
	}
	if in.OKLabel != "" {
		expr.Clause("OK button name", script.String(in.OKLabel))
	}
	if in.CancelLabel != "" {
		expr.Clause("cancel button name", script.String(in.CancelLabel))
	}
	if in.Multiple != nil {
		expr.Flag("multiple selections allowed", *in.Multiple)
	}
	if in.EmptyAllowed != nil {
		expr.Flag("empty selection allowed", *in.EmptyAllowed)
	}

	var lines []string
	if in.App != "" {
		lines = append(lines, script.Activate(in.App))
	}
	lines = append(lines,
		script.TellTo(in.App, "set r to "+expr.String()),
		// choose from list reports cancellation as a false result rather
		// than error -128; normalize so callers see one cancel path.
		"if r is false then error number -128",
		"set AppleScript's text item delimiters to "+script.String(script.FieldSep),
		"return r as text",
	)
	return lines, nil
}
