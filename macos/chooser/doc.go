// Package chooser provides macOS selection helpers: a list chooser (choose
// from list) and file/folder browsers (choose file / choose folder).
//
// Exported API
//
//  1. FromList(ListInput)
//     Present candidates and return the chosen items as text. Candidates
//     may mix scalar types (strings, numbers, booleans); each embeds via
//     its textual form.
//  2. File(FileInput) / Folder(FolderInput)
//     Present a browser and return the chosen entries as POSIX paths. A
//     single selection is a one-element slice.
//
// Starting locations take a script.Location: either a POSIX path
// (script.LocationPath) or an HFS alias path (script.LocationAlias); both
// normalize to an equivalent file reference.
//
// Cancellation returns script.ErrCancelled on every operation, including
// the list chooser, whose native cancel result (false) is normalized to the
// same sentinel.
package chooser
