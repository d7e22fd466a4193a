// Package timecode provides millisecond-precision timestamps and half-open
// time ranges for word-level timing work.
//
// Timestamp and Range are plain value types with no identity: equality is
// value equality, arithmetic never mutates, and all durations are expressed
// in integer milliseconds. Text round-trips use the HH:MM:SS.mmm form.
package timecode
