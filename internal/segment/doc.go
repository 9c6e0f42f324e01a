// Package segment stores semantic segments produced by the OSC interpreter.
//
// A Store keeps the AddSegment actions for one terminal session, indexed by
// row. It is the session-side stand-in for grid metadata: consumers query it
// for the spans on a row or the spans of one prompt cycle, and the session
// keeps it trimmed as rows scroll out or the terminal narrows.
//
// Unlike the interpreter, a Store is safe for concurrent use; the decoding
// loop writes while renderers and command-navigation features read.
package segment
