package chooser

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/duh/macos/script"
)

func TestBuildFileMinimal(t *testing.T) {
	lines, err := buildFile(FileInput{})
	be.Err(t, err, nil)
	be.Equal(t, lines[0], "set r to choose file")
	be.Equal(t, lines[len(lines)-1], "return out")
}

func TestBuildFileAllOptions(t *testing.T) {
	invisibles := true
	multiple := true
	packages := false
	lines, err := buildFile(FileInput{
		Prompt:              "Pick an image",
		OfType:              []string{"public.image", "public.movie"},
		Location:            script.LocationPath("/Users/me/Pictures"),
		Invisibles:          &invisibles,
		Multiple:            &multiple,
		ShowPackageContents: &packages,
		App:                 "Finder",
	})
	be.Err(t, err, nil)
	be.Equal(t, lines[0], `tell application "Finder" to activate`)
	be.Equal(t, lines[1],
		`tell application "Finder" to set r to choose file`+
			` with prompt "Pick an image" of type {"public.image", "public.movie"}`+
			` default location (POSIX file "/Users/me/Pictures")`+
			` with invisibles with multiple selections allowed`+
			` without showing package contents`)
}

func TestBuildFolder(t *testing.T) {
	lines, err := buildFolder(FolderInput{
		Prompt:   "Pick a destination",
		Location: script.LocationAlias("Macintosh HD:Users:me:"),
	})
	be.Err(t, err, nil)
	be.Equal(t, lines[0],
		`set r to choose folder with prompt "Pick a destination"`+
			` default location alias "Macintosh HD:Users:me:"`)
}

// The harness must flatten both single and multiple selections to
// FieldSep-joined POSIX paths.
func TestPathChooserHarness(t *testing.T) {
	lines, err := buildFile(FileInput{})
	be.Err(t, err, nil)

	joined := strings.Join(lines, "\n")
	be.True(t, strings.Contains(joined, "if class of r is list then"))
	be.True(t, strings.Contains(joined, "POSIX path of f"))
	be.True(t, strings.Contains(joined, "POSIX path of r"))
	be.True(t, strings.Contains(joined, `"|||"`))
}
