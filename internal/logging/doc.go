// Package logging constructs the slog loggers retime uses.
//
// Two formats are supported: a console handler that prints one readable
// line per record (timestamp, level, component prefix, flattened key=value
// attributes) and a JSON handler with ts/level/msg key remapping. NewNop
// returns a logger that discards everything, for tests and wiring that
// cannot fail.
package logging
