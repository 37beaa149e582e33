// Package duh is a lightweight index for the helper subpackages in this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/duh/macos/dialog
//     Modal text dialogs and alerts (display dialog / display alert).
//   - github.com/spachava753/duh/macos/chooser
//     List, file, and folder choosers (choose from list / choose file /
//     choose folder).
//   - github.com/spachava753/duh/macos/notify
//     Notification Center helpers: posting notifications and reading the
//     delivered-notification history.
//   - github.com/spachava753/duh/macos/speech
//     Text-to-speech helpers (say) and installed-voice discovery.
//   - github.com/spachava753/duh/macos/script
//     Shared AppleScript plumbing: literal encoding, expression building,
//     osascript execution, and the user-cancellation sentinel.
//   - github.com/spachava753/duh/textlist
//     Generic scalar-list-to-delimited-text joining.
//   - github.com/spachava753/duh/tool
//     MCP tool surface exposing the interaction helpers to agents.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/duh
//   - Then drill in with:
//     go doc github.com/spachava753/duh/macos/dialog
//     go doc github.com/spachava753/duh/macos/chooser
//     go doc github.com/spachava753/duh/macos/notify
package duh
