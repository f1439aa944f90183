// Package ui is the Bubble Tea shell around the panel layout.
//
// Pieces:
//   - Grid: screen regions for the sidebar and the three fixed slots
//   - DragTracker: mouse press/motion/release to layout drag events
//   - EntriesView: one panel's transcript, analysis or chat entries
//   - Sidebar: conversation history list
//   - FocusManager: keyboard focus across the sidebar and slots
//   - KeybindRegistry / KeyHandler: SPC-leader bindings
//   - AppModel: owns the layout controller and renders every slot from it
package ui
