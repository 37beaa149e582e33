package dialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spachava753/duh/macos/script"
)

const maxButtons = 3

// Button identifies one dialog button either by its 1-based position or by
// its label. The zero Button emits no clause.
type Button struct {
	label string
	index int
}

// ButtonLabel selects a button by its label text.
func ButtonLabel(label string) Button {
	return Button{label: label}
}

// ButtonIndex selects a button by 1-based position.
func ButtonIndex(n int) Button {
	return Button{index: n}
}

func (b Button) isSet() bool {
	return b.label != "" || b.index != 0
}

func (b Button) literal() string {
	if b.label != "" {
		return script.String(b.label)
	}
	return strconv.Itoa(b.index)
}

// Icon selects the dialog icon: one of the named system icons or an icon
// file. The zero Icon emits no clause and keeps the platform default.
type Icon struct {
	name string
	path string
}

// Named system icons accepted by display dialog.
var (
	IconNote    = Icon{name: "note"}
	IconCaution = Icon{name: "caution"}
	IconStop    = Icon{name: "stop"}
)

// IconPath selects an icon file (.icns) by POSIX path.
func IconPath(path string) Icon {
	return Icon{path: path}
}

func (ic Icon) literal() (string, bool) {
	if ic.name != "" {
		return ic.name, true
	}
	if ic.path != "" {
		return "(POSIX file " + script.String(ic.path) + " as alias)", true
	}
	return "", false
}

// Input configures Show. Message is required; every other field is optional
// and keeps the platform default when absent.
type Input struct {
	// Message is the dialog text. Required.
	Message string

	// DefaultAnswer adds a text entry field seeded with the given value.
	// When nil the dialog has no entry field and Result.Text stays empty.
	DefaultAnswer *string

	// HiddenAnswer masks the entry field for password input.
	HiddenAnswer *bool

	// Buttons replaces the default button set with up to three labels.
	Buttons []string

	// DefaultButton marks the button activated by return.
	DefaultButton Button

	// CancelButton marks the button that cancels the dialog.
	CancelButton Button

	// Title sets the dialog window title.
	Title string

	// Icon selects the dialog icon.
	Icon Icon

	// GiveUpAfter dismisses the dialog automatically after the duration
	// (whole seconds). The result then reports GaveUp with no button.
	GiveUpAfter time.Duration

	// App names the application that should present the dialog. Empty
	// leaves the default scripting target in charge.
	App string
}

// Result is the outcome of Show.
type Result struct {
	// Button is the label of the clicked button, empty when the dialog
	// gave up.
	Button string

	// Text is the entered text when DefaultAnswer was set.
	Text string

	// GaveUp reports that the dialog auto-dismissed via GiveUpAfter.
	GaveUp bool
}

// Show presents one modal text dialog and blocks until it is dismissed.
// User cancellation returns script.ErrCancelled.
func Show(in Input) (Result, error) {
	lines, err := buildShow(in)
	if err != nil {
		return Result{}, err
	}
	out, err := script.Run(lines)
	if err != nil {
		return Result{}, err
	}
	return parseShow(in, out)
}

func buildShow(in Input) ([]string, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, errors.New("dialog: message is required")
	}
	if len(in.Buttons) > maxButtons {
		return nil, fmt.Errorf("dialog: at most %d buttons, got %d", maxButtons, len(in.Buttons))
	}

	expr := script.Command("display dialog", script.String(in.Message))
	if in.DefaultAnswer != nil {
		expr.Clause("default answer", script.String(*in.DefaultAnswer))
	}
	if in.HiddenAnswer != nil {
		expr.Flag("hidden answer", *in.HiddenAnswer)
	}
	if len(in.Buttons) > 0 {
		labels, err := script.List(anySlice(in.Buttons))
		if err != nil {
			return nil, fmt.Errorf("dialog: buttons: %w", err)
		}
		expr.Clause("buttons", labels)
	}
	if in.DefaultButton.isSet() {
		expr.Clause("default button", in.DefaultButton.literal())
	}
	if in.CancelButton.isSet() {
		expr.Clause("cancel button", in.CancelButton.literal())
	}
	if in.Title != "" {
		expr.Clause("with title", script.String(in.Title))
	}
	if lit, ok := in.Icon.literal(); ok {
		expr.Clause("with icon", lit)
	}
	if in.GiveUpAfter > 0 {
		expr.Clause("giving up after", script.Seconds(in.GiveUpAfter))
	}

	return harness(in.App, expr, showFields(in)), nil
}

func showFields(in Input) []string {
	fields := []string{"button returned of r"}
	if in.DefaultAnswer != nil {
		fields = append(fields, "text returned of r")
	}
	if in.GiveUpAfter > 0 {
		fields = append(fields, "gave up of r")
	}
	return fields
}

func parseShow(in Input, out string) (Result, error) {
	parts := strings.Split(out, script.FieldSep)
	want := len(showFields(in))
	if len(parts) != want {
		return Result{}, fmt.Errorf("dialog: unexpected dialog output %q", out)
	}

	res := Result{Button: parts[0]}
	next := 1
	if in.DefaultAnswer != nil {
		res.Text = parts[next]
		next++
	}
	if in.GiveUpAfter > 0 {
		res.GaveUp = parts[next] == "true"
	}
	if res.GaveUp {
		// Gave-up dismissal reports no chosen button.
		res.Button = ""
	}
	return res, nil
}

// harness wraps expr so the script returns the requested record fields
// joined with script.FieldSep, optionally presenting through app.
func harness(app string, expr *script.Expr, fields []string) []string {
	var lines []string
	if app != "" {
		lines = append(lines, script.Activate(app))
	}
	lines = append(lines, script.TellTo(app, "set r to "+expr.String()))
	lines = append(lines, "return "+strings.Join(wrapFields(fields), " & "+script.String(script.FieldSep)+" & "))
	return lines
}

func wrapFields(fields []string) []string {
	wrapped := make([]string, len(fields))
	for i, f := range fields {
		wrapped[i] = "(" + f + ")"
	}
	return wrapped
}

func anySlice(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
