package chooser

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestBuildFromListMinimal(t *testing.T) {
	lines, err := buildFromList(ListInput{Items: []any{"A", "B", "C"}})
	be.Err(t, err, nil)
	be.Equal(t, lines, []string{
		`set r to choose from list {"A", "B", "C"}`,
		`if r is false then error number -128`,
		`set AppleScript's text item delimiters to "|||"`,
		`return r as text`,
	})
}

func TestBuildFromListAllOptions(t *testing.T) {
	multiple := false
	empty := true
	lines, err := buildFromList(ListInput{
		Items:        []any{"A", "B", "C"},
		Title:        "Pick",
		Prompt:       "Pick one:",
		DefaultItems: []any{"B"},
		OKLabel:      "Use",
		CancelLabel:  "Never mind",
		Multiple:     &multiple,
		EmptyAllowed: &empty,
		App:          "Terminal",
	})
	be.Err(t, err, nil)
	be.Equal(t, lines[0], `tell application "Terminal" to activate`)
	be.Equal(t, lines[1],
		`tell application "Terminal" to set r to choose from list {"A", "B", "C"}`+
			` with title "Pick" with prompt "Pick one:" default items {"B"}`+
			` OK button name "Use" cancel button name "Never mind"`+
			` without multiple selections allowed with empty selection allowed`)
}

func TestBuildFromListMixedScalars(t *testing.T) {
	lines, err := buildFromList(ListInput{Items: []any{"port", 8080, true}})
	be.Err(t, err, nil)
	be.True(t, strings.Contains(lines[0], `{"port", 8080, true}`))
}

func TestBuildFromListNonScalar(t *testing.T) {
	_, err := buildFromList(ListInput{Items: []any{"ok", []string{"bad"}}})
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "chooser: items"))

	_, err = buildFromList(ListInput{
		Items:        []any{"ok"},
		DefaultItems: []any{map[string]int{}},
	})
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "default items"))
}

func TestBuildFromListValidation(t *testing.T) {
	_, err := buildFromList(ListInput{})
	be.True(t, err != nil)
}

func TestParseItems(t *testing.T) {
	be.Equal(t, parseItems("B"), []string{"B"})
	be.Equal(t, parseItems("A|||B"), []string{"A", "B"})
	be.Equal(t, parseItems(""), []string{})
}
