// Package ui contains the Bubble Tea program that renders a picker session.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Prompt editing keys (internal/ui/input.go) change the query text held in
//     internal/ui/state.Prompt and report it to the bound session.
//   - Control keys (internal/ui/navigation.go) are translated into
//     picker.Key values and dispatched to the callbacks the session
//     registered through picker.Bind.
//
// State ownership:
//   - The picker.Session owns the query result, the cursor and the marks.
//     Model only mirrors them through the picker.Display setters and keeps
//     what is purely presentational: the caret, the scroll offset and the
//     status messages.
//   - Side effects such as clipboard writes run through internal/ui/command
//     so they stay off the update loop.
//
// Once the session reports an outcome through Finish, the next Update returns
// tea.Quit and View renders nothing.
package ui
