// Package backend applies cursor shape actions to a tcell screen.
//
// Hosts that render with tcell hand their tcell.Screen to a Cursor and wire
// its Apply method as the session's cursor-shape sink. Hosts with other
// renderers can implement the small Screen interface instead.
package backend
