// Package dbg provides a build-tag-gated trace logger for the assembler
// and emulator. With the "debug" build tag it writes to stderr; without it,
// every call compiles to a no-op.
package dbg

// Logger is implemented by both the debug and no-op backends.
type Logger interface {
	Printf(format string, a ...interface{})
	Println(a ...interface{})
}

var backend Logger

// Printf logs a formatted trace line, e.g. a decoded instruction or an
// executed exec step.
func Printf(format string, a ...interface{}) {
	backend.Printf(format, a...)
}

// Println logs a trace line.
func Println(a ...interface{}) {
	backend.Println(a...)
}
