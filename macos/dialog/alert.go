package dialog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spachava753/duh/macos/script"
)

// Severity selects the alert presentation style.
type Severity string

const (
	// SeverityInformational presents a standard informational alert.
	SeverityInformational Severity = "informational"
	// SeverityWarning presents a warning alert.
	SeverityWarning Severity = "warning"
	// SeverityCritical presents a critical alert.
	SeverityCritical Severity = "critical"
)

// AlertInput configures Alert. Text is required; every other field is
// optional and keeps the platform default when absent.
type AlertInput struct {
	// Text is the bold alert heading. Required.
	Text string

	// Message is the explanatory text shown under the heading.
	Message string

	// Severity selects the alert style.
	Severity Severity

	// Buttons replaces the default button set with up to three labels.
	Buttons []string

	// DefaultButton marks the button activated by return.
	DefaultButton Button

	// CancelButton marks the button that cancels the alert.
	CancelButton Button

	// GiveUpAfter dismisses the alert automatically after the duration
	// (whole seconds).
	GiveUpAfter time.Duration

	// App names the application that should present the alert.
	App string
}

// AlertResult is the outcome of Alert.
type AlertResult struct {
	// Button is the label of the clicked button, empty when the alert
	// gave up.
	Button string

	// GaveUp reports that the alert auto-dismissed via GiveUpAfter.
	GaveUp bool
}

// Alert presents one modal alert and blocks until it is dismissed. User
// cancellation returns script.ErrCancelled.
func Alert(in AlertInput) (AlertResult, error) {
	lines, err := buildAlert(in)
	if err != nil {
		return AlertResult{}, err
	}
	out, err := script.Run(lines)
	if err != nil {
		return AlertResult{}, err
	}
	return parseAlert(in, out)
}

func buildAlert(in AlertInput) ([]string, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.New("dialog: alert text is required")
	}
	if len(in.Buttons) > maxButtons {
		return nil, fmt.Errorf("dialog: at most %d buttons, got %d", maxButtons, len(in.Buttons))
	}
	switch in.Severity {
	case "", SeverityInformational, SeverityWarning, SeverityCritical:
	default:
		return nil, fmt.Errorf("dialog: invalid alert severity %q", in.Severity)
	}

	expr := script.Command("display alert", script.String(in.Text))
	if in.Message != "" {
		expr.Clause("message", script.String(in.Message))
	}
	if in.Severity != "" {
		expr.Clause("as", string(in.Severity))
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
	if in.GiveUpAfter > 0 {
		expr.Clause("giving up after", script.Seconds(in.GiveUpAfter))
	}

	return harness(in.App, expr, alertFields(in)), nil
}

func alertFields(in AlertInput) []string {
	fields := []string{"button returned of r"}
	if in.GiveUpAfter > 0 {
		fields = append(fields, "gave up of r")
	}
	return fields
}

func parseAlert(in AlertInput, out string) (AlertResult, error) {
	parts := strings.Split(out, script.FieldSep)
	if len(parts) != len(alertFields(in)) {
		return AlertResult{}, fmt.Errorf("dialog: unexpected alert output %q", out)
	}

	res := AlertResult{Button: parts[0]}
	if in.GiveUpAfter > 0 {
		res.GaveUp = parts[1] == "true"
	}
	if res.GaveUp {
		res.Button = ""
	}
	return res, nil
}
