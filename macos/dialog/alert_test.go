package dialog

import (
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestBuildAlertMinimal(t *testing.T) {
	lines, err := buildAlert(AlertInput{Text: "disk full"})
	be.Err(t, err, nil)
	be.Equal(t, lines, []string{
		`set r to display alert "disk full"`,
		`return (button returned of r)`,
	})
}

func TestBuildAlertAllOptions(t *testing.T) {
	lines, err := buildAlert(AlertInput{
		Text:          "disk full",
		Message:       "Free up space to continue.",
		Severity:      SeverityCritical,
		Buttons:       []string{"Ignore", "Clean Up"},
		DefaultButton: ButtonLabel("Clean Up"),
		CancelButton:  ButtonLabel("Ignore"),
		GiveUpAfter:   time.Minute,
	})
	be.Err(t, err, nil)
	be.Equal(t, lines[0],
		`set r to display alert "disk full" message "Free up space to continue."`+
			` as critical buttons {"Ignore", "Clean Up"}`+
			` default button "Clean Up" cancel button "Ignore" giving up after 60`)
	be.Equal(t, lines[1],
		`return (button returned of r) & "|||" & (gave up of r)`)
}

func TestBuildAlertValidation(t *testing.T) {
	_, err := buildAlert(AlertInput{})
	be.True(t, err != nil)

	_, err = buildAlert(AlertInput{Text: "x", Severity: "fatal"})
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "severity"))

	_, err = buildAlert(AlertInput{Text: "x", Buttons: []string{"1", "2", "3", "4"}})
	be.True(t, err != nil)
}

func TestParseAlertGaveUp(t *testing.T) {
	in := AlertInput{Text: "x", GiveUpAfter: 2 * time.Second}
	res, err := parseAlert(in, "|||true")
	be.Err(t, err, nil)
	be.True(t, res.GaveUp)
	be.Equal(t, res.Button, "")

	res, err = parseAlert(in, "OK|||false")
	be.Err(t, err, nil)
	be.True(t, !res.GaveUp)
	be.Equal(t, res.Button, "OK")
}

func TestParseAlertNoTimeout(t *testing.T) {
	res, err := parseAlert(AlertInput{Text: "x"}, "OK")
	be.Err(t, err, nil)
	be.Equal(t, res.Button, "OK")
	be.True(t, !res.GaveUp)
}
