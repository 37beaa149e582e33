// Package script provides the shared AppleScript plumbing used by the macos
// helper packages: literal encoding, one-shot expression building, osascript
// execution, and classification of user cancellation.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spachava753/duh/textlist"
)

const (
	osascriptPath = "/usr/bin/osascript"

	// cancelledCode is the AppleScript error number raised when the user
	// dismisses a prompt with its cancel button. Only this exact code is
	// treated as cancellation; every other code surfaces as a RunError.
	cancelledCode = -128
)

// FieldSep separates fields and items in harness output returned by generated
// scripts. Chosen so it never collides with dialog button labels or POSIX
// paths in practice.
const FieldSep = "|||"

// ErrCancelled reports that the user dismissed the prompt. Callers that want
// the traditional silent-on-cancel behavior simply stop on any error; callers
// that care match with errors.Is.
var ErrCancelled = errors.New("script: user cancelled")

// RunError is a non-cancellation failure reported by osascript, carrying the
// native AppleScript error number when one could be extracted from the
// output.
type RunError struct {
	Code   int
	Output string
}

// Error returns the formatted error message.
func (e *RunError) Error() string {
	if e == nil {
		return "script: <nil>"
	}
	if e.Output == "" {
		return fmt.Sprintf("script: osascript error %d", e.Code)
	}
	return fmt.Sprintf("script: osascript error %d: %s", e.Code, e.Output)
}

// String encodes s as an AppleScript string literal, including the
// surrounding quotes.
func String(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return `"` + r.Replace(s) + `"`
}

// Bool encodes b as an AppleScript boolean literal.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// Seconds encodes d as an AppleScript integer literal of whole seconds,
// suitable for "giving up after" clauses. Sub-second durations round up to
// one second so a positive timeout never becomes zero.
func Seconds(d time.Duration) string {
	secs := int(d / time.Second)
	if secs == 0 && d > 0 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// List encodes items as an AppleScript list literal. Strings become quoted
// string literals, booleans and numbers keep their bare form. A non-scalar
// item yields a coercion error naming its position.
func List(items []any) (string, error) {
	literals := make([]any, len(items))
	for i, item := range items {
		lit, err := literal(item)
		if err != nil {
			return "", fmt.Errorf("script: list item %d: %w", i, err)
		}
		literals[i] = lit
	}
	body, err := textlist.Join(literals, ", ")
	if err != nil {
		return "", err
	}
	return "{" + body + "}", nil
}

func literal(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return String(v), nil
	case fmt.Stringer:
		return String(v.String()), nil
	default:
		// bool and numeric scalars embed bare; anything else is rejected
		// by the coercion layer.
		return textlist.Text(value)
	}
}

// Location is a file-system location given either as a POSIX path or as a
// colon-delimited HFS alias path. The zero Location emits no clause.
type Location struct {
	path  string
	alias string
}

// LocationPath returns a Location for a POSIX path such as "/Users/me".
func LocationPath(path string) Location {
	return Location{path: path}
}

// LocationAlias returns a Location for an HFS alias path such as
// "Macintosh HD:Users:me:".
func LocationAlias(alias string) Location {
	return Location{alias: alias}
}

// Literal returns the AppleScript form of the location and whether the
// location is set. Both representations normalize to a semantically
// equivalent file reference.
func (l Location) Literal() (string, bool) {
	if l.path != "" {
		return "(POSIX file " + String(l.path) + ")", true
	}
	if l.alias != "" {
		return "alias " + String(l.alias), true
	}
	return "", false
}

// Expr assembles a single AppleScript command expression from a required
// head plus conditionally appended clauses. Building performs no side
// effects; the expression runs exactly once when handed to Run.
type Expr struct {
	parts []string
}

// Command starts an expression from the command words and any required
// argument literals.
func Command(words ...string) *Expr {
	return &Expr{parts: append([]string(nil), words...)}
}

// Clause appends a keyword followed by a literal, for example
// Clause("with title", String("Backup")).
func (e *Expr) Clause(keyword, literal string) *Expr {
	e.parts = append(e.parts, keyword, literal)
	return e
}

// Raw appends an already-rendered fragment.
func (e *Expr) Raw(fragment string) *Expr {
	e.parts = append(e.parts, fragment)
	return e
}

// Flag appends the boolean clause form: "with keyword" when on, otherwise
// "without keyword".
func (e *Expr) Flag(keyword string, on bool) *Expr {
	if on {
		e.parts = append(e.parts, "with "+keyword)
	} else {
		e.parts = append(e.parts, "without "+keyword)
	}
	return e
}

// String renders the expression as one script line.
func (e *Expr) String() string {
	return strings.Join(e.parts, " ")
}

// TellTo prefixes line with a one-line tell targeting app. An empty app
// returns line unchanged, leaving the default scripting target in charge.
func TellTo(app, line string) string {
	if app == "" {
		return line
	}
	return "tell application " + String(app) + " to " + line
}

// Activate returns a line bringing app frontmost so its prompt is visible.
func Activate(app string) string {
	return "tell application " + String(app) + " to activate"
}

// Run executes the script lines as one osascript invocation, one -e flag per
// line, and returns the trimmed combined output. User cancellation maps to
// ErrCancelled; other scripting failures carrying an AppleScript error
// number map to *RunError.
func Run(lines []string) (string, error) {
	args := make([]string, 0, len(lines)*2)
	for _, line := range lines {
		args = append(args, "-e", line)
	}

	cmd := exec.Command(osascriptPath, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", classify(err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// errorCodeRe matches the trailing AppleScript error number osascript prints,
// for example: execution error: User canceled. (-128)
var errorCodeRe = regexp.MustCompile(`\((-?\d+)\)$`)

func classify(err error, output string) error {
	if code, ok := errorCode(output); ok {
		if code == cancelledCode {
			return ErrCancelled
		}
		return &RunError{Code: code, Output: output}
	}
	return fmt.Errorf("script: osascript failed: %w: %s", err, output)
}

func errorCode(output string) (int, bool) {
	m := errorCodeRe.FindStringSubmatch(strings.TrimSpace(output))
	if m == nil {
		return 0, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return code, true
}
