// Package ui contains the Bubble Tea program for the screen generator
// settings editor. The Model renders settings.State snapshots and turns key
// presses into settings actions; it never mutates configuration itself.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. While the field
//     editor or the find prompt is open, key presses go to it first; otherwise
//     messages are routed through a typed handler registry.
//   - Key handlers (navigation.go) submit actions through the
//     internal/ui/command bus, which queues them on the view model in order.
//   - waitForState and waitForEffect (machine.go) block on the view model's
//     channels and feed snapshots and effects back into Update. Snapshots are
//     applied with submission suppressed, so redrawing never echoes actions.
//
// State ownership:
//   - Panel rows, cursors and viewports live in internal/ui/state.List.
//   - The authoritative configuration and selection live in the view model;
//     the Model only holds the latest snapshot.
package ui
