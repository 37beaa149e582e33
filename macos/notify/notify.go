package notify

import (
	"errors"
	"strings"

	"github.com/spachava753/duh/macos/script"
)

// Notification configures Post. At least one of Text and Title is required;
// every other field is optional and keeps the platform default when absent.
type Notification struct {
	// Text is the notification body.
	Text string

	// Title is the notification title.
	Title string

	// Subtitle is shown under the title.
	Subtitle string

	// Sound names a sound from the system sound library, for example
	// "Frog".
	Sound string

	// App names the application that should post the notification.
	App string
}

// Post delivers one notification to Notification Center and returns once the
// request is handed off. There is no result; delivery and presentation are
// up to the platform.
func Post(n Notification) error {
	lines, err := buildPost(n)
	if err != nil {
		return err
	}
	_, err = script.Run(lines)
	return err
}

func buildPost(n Notification) ([]string, error) {
	if strings.TrimSpace(n.Text) == "" && strings.TrimSpace(n.Title) == "" {
		return nil, errors.New("notify: text or title is required")
	}

	expr := script.Command("display notification")
	if n.Text != "" {
		expr.Raw(script.String(n.Text))
	}
	if n.Title != "" {
		expr.Clause("with title", script.String(n.Title))
	}
	if n.Subtitle != "" {
		expr.Clause("subtitle", script.String(n.Subtitle))
	}
	if n.Sound != "" {
		expr.Clause("sound name", script.String(n.Sound))
	}

	var lines []string
	if n.App != "" {
		lines = append(lines, script.Activate(n.App))
	}
	lines = append(lines, script.TellTo(n.App, expr.String()))
	return lines, nil
}
