package ports

// Console is the line-oriented output stream shared by all tasks.
// Each call writes exactly one complete line.
type Console interface {
	Linef(format string, args ...any)
}
