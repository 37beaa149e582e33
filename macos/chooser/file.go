package chooser

import (
	"fmt"

	"github.com/spachava753/duh/macos/script"
)

// FileInput configures File. Every field is optional; the zero value
// presents the platform-default file browser.
type FileInput struct {
	// Prompt sets the prompt text in the browser.
	Prompt string

	// OfType restricts selectable files to the given type identifiers
	// (UTIs such as "public.image").
	OfType []string

	// Location sets the starting directory.
	Location script.Location

	// Invisibles controls whether invisible files are listed.
	Invisibles *bool

	// Multiple allows selecting more than one file.
	Multiple *bool

	// ShowPackageContents lets the browser descend into packages.
	ShowPackageContents *bool

	// App names the application that should present the browser.
	App string
}

// FolderInput configures Folder. Every field is optional; the zero value
// presents the platform-default folder browser.
type FolderInput struct {
	// Prompt sets the prompt text in the browser.
	Prompt string

	// Location sets the starting directory.
	Location script.Location

	// Invisibles controls whether invisible folders are listed.
	Invisibles *bool

	// Multiple allows selecting more than one folder.
	Multiple *bool

	// ShowPackageContents lets the browser descend into packages.
	ShowPackageContents *bool

	// App names the application that should present the browser.
	App string
}

// File presents a file browser and returns the chosen files as POSIX paths.
// A single selection yields a one-element slice. Cancellation returns
// script.ErrCancelled.
func File(in FileInput) ([]string, error) {
	lines, err := buildFile(in)
	if err != nil {
		return nil, err
	}
	return runPathChooser(lines)
}

// Folder presents a folder browser and returns the chosen directories as
// POSIX paths. Cancellation returns script.ErrCancelled.
func Folder(in FolderInput) ([]string, error) {
	lines, err := buildFolder(in)
	if err != nil {
		return nil, err
	}
	return runPathChooser(lines)
}

func buildFile(in FileInput) ([]string, error) {
	expr := script.Command("choose file")
	if in.Prompt != "" {
		expr.Clause("with prompt", script.String(in.Prompt))
	}
	if len(in.OfType) > 0 {
		types := make([]any, len(in.OfType))
		for i, t := range in.OfType {
			types[i] = t
		}
		list, err := script.List(types)
		if err != nil {
			return nil, fmt.Errorf("chooser: of type: %w", err)
		}
		expr.Clause("of type", list)
	}
	appendBrowserClauses(expr, in.Location, in.Invisibles, in.Multiple, in.ShowPackageContents)
	return pathChooserLines(in.App, expr), nil
}

func buildFolder(in FolderInput) ([]string, error) {
	expr := script.Command("choose folder")
	if in.Prompt != "" {
		expr.Clause("with prompt", script.String(in.Prompt))
	}
	appendBrowserClauses(expr, in.Location, in.Invisibles, in.Multiple, in.ShowPackageContents)
	return pathChooserLines(in.App, expr), nil
}

func appendBrowserClauses(expr *script.Expr, loc script.Location, invisibles, multiple, packages *bool) {
	if lit, ok := loc.Literal(); ok {
		expr.Clause("default location", lit)
	}
	if invisibles != nil {
		expr.Flag("invisibles", *invisibles)
	}
	if multiple != nil {
		expr.Flag("multiple selections allowed", *multiple)
	}
	if packages != nil {
		expr.Flag("showing package contents", *packages)
	}
}

// pathChooserLines wraps expr so single and multiple selections both come
// back as FieldSep-joined POSIX paths.
func pathChooserLines(app string, expr *script.Expr) []string {
	var lines []string
	if app != "" {
		lines = append(lines, script.Activate(app))
	}
	sep := script.String(script.FieldSep)
	lines = append(lines,
		script.TellTo(app, "set r to "+expr.String()),
		"set out to \"\"",
		"if class of r is list then",
		"repeat with f in r",
		"if out is \"\" then",
		"set out to POSIX path of f",
		"else",
		"set out to out & "+sep+" & (POSIX path of f)",
		"end if",
		"end repeat",
		"else",
		"set out to POSIX path of r",
		"end if",
		"return out",
	)
	return lines
}

func runPathChooser(lines []string) ([]string, error) {
	out, err := script.Run(lines)
	if err != nil {
		return nil, err
	}
	return parseItems(out), nil
}
