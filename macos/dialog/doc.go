// Package dialog provides macOS modal dialog helpers: text dialogs with an
// optional entry field (display dialog) and alerts (display alert).
//
// Exported API
//
//  1. Show(Input)
//     Present a text dialog. Input.Message is required; everything else is
//     optional. Absent optional fields emit no clause, so the platform
//     default applies. A nil DefaultAnswer means "no entry field" rather
//     than an empty one.
//  2. Alert(AlertInput)
//     Present an alert with a severity (SeverityInformational,
//     SeverityWarning, SeverityCritical) and an explanatory message.
//
// Primary models
//
//   - Input / Result: text dialog options and outcome.
//   - AlertInput / AlertResult: alert options and outcome.
//   - Button: a default/cancel button given by label (ButtonLabel) or
//     1-based position (ButtonIndex).
//   - Icon: a named system icon (IconNote, IconCaution, IconStop) or an
//     icon file (IconPath).
//
// Cancellation and timeouts
//
//   - Clicking the cancel button returns script.ErrCancelled. Callers that
//     want the traditional silent-on-cancel behavior just stop on error;
//     callers that care match with errors.Is.
//   - When GiveUpAfter is set and the dialog auto-dismisses, the result has
//     GaveUp true and an empty Button. Gave-up is a result, never an error.
//
// Operational notes
//
//   - Presenting dialogs requires macOS Automation permission for the
//     calling process (System Settings -> Privacy & Security -> Automation).
//   - Set App to present through a specific application; it is activated
//     first so the dialog is visible.
package dialog
