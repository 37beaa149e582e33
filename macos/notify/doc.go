// Package notify provides macOS Notification Center helpers for posting
// notifications and reading the delivered-notification history.
//
// Data sources
//
//   - AppleScript (display notification): the posting path.
//   - SQLite (~/Library/Group Containers/group.com.apple.usernoted/db2/db):
//     fast read-only history queries.
//
// Exported API
//
//  1. Post(Notification)
//     Post one notification. At least one of Text and Title is required;
//     Subtitle and Sound are optional.
//  2. ListDelivered(limit)
//     Recently delivered notifications (posting app, delivery time,
//     presented flag), newest first.
//  3. DeliveredSummary(limit)
//     Per-application delivery counts, most recently active first.
//
// Operational notes
//
//   - Posting is fire-and-forget: the call returns once the request is
//     handed off, and presentation is up to the platform.
//   - History reads require Full Disk Access for the calling process.
//   - SQLite access uses github.com/mattn/go-sqlite3 (CGO required).
package notify
