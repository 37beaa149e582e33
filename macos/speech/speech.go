package speech

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/spachava753/duh/macos/script"
)

const sayPath = "/usr/bin/say"

// Input configures Say. Text is required; every other field is optional and
// keeps the platform default when absent.
type Input struct {
	// Text is spoken aloud. Required.
	Text string

	// Display shows the given text in the feedback window instead of the
	// spoken text.
	Display string

	// Voice names the voice to speak with, for example "Alex".
	Voice string

	// WaitUntilCompletion controls whether the call blocks until speech
	// finishes. Absent keeps the platform default.
	WaitUntilCompletion *bool

	// SaveTo writes the generated audio to a file instead of speaking it
	// through the output device.
	SaveTo script.Location

	// App names the application that should speak.
	App string
}

// Say speaks text (or renders it to a file via SaveTo). There is no result.
func Say(in Input) error {
	lines, err := buildSay(in)
	if err != nil {
		return err
	}
	_, err = script.Run(lines)
	return err
}

func buildSay(in Input) ([]string, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.New("speech: text is required")
	}

	expr := script.Command("say", script.String(in.Text))
	if in.Display != "" {
		expr.Clause("displaying", script.String(in.Display))
	}
	if in.Voice != "" {
		expr.Clause("using", script.String(in.Voice))
	}
	if in.WaitUntilCompletion != nil {
		expr.Flag("waiting until completion", *in.WaitUntilCompletion)
	}
	if lit, ok := in.SaveTo.Literal(); ok {
		expr.Clause("saving to", lit)
	}

	return []string{script.TellTo(in.App, expr.String())}, nil
}

// Voice describes one installed speech voice.
type Voice struct {
	Name   string
	Locale string
	Sample string
}

// voiceLineRe splits one line of `say -v ?` output: a name that may contain
// spaces, a locale token, then "# sample".
var voiceLineRe = regexp.MustCompile(`^(.*?)\s+([a-z]{2,3}[_-][A-Za-z0-9-]+)\s+#\s*(.*)$`)

// Voices lists the installed speech voices by querying the say command.
func Voices() ([]Voice, error) {
	cmd := exec.Command(sayPath, "-v", "?")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("speech: listing voices failed: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return parseVoices(out.String()), nil
}

func parseVoices(out string) []Voice {
	lines := strings.Split(out, "\n")
	voices := make([]Voice, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := voiceLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		voices = append(voices, Voice{
			Name:   strings.TrimSpace(m[1]),
			Locale: m[2],
			Sample: strings.TrimSpace(m[3]),
		})
	}
	return voices
}
