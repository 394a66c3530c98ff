// Package formatter renders log records into lines.
//
// LineFormatter produces two layouts from the same fields:
//
//	console: [<ts><LEVEL> <origin>] <message>   (decorated by a Palette)
//	file:    [<ts><LEVEL> <origin>] <message>   (never decorated)
//
// The level column is always five characters wide. The timestamp field
// comes from a Clock and carries its own trailing space, so disabling
// timestamps (NoClock) removes the field without leaving a double space.
//
// Decoration and timestamps are strategies rather than flags: ANSI and
// Plain implement Palette, RFC3339Micros and NoClock implement Clock. Each
// pair yields identical field order and spacing, so stripping the escape
// sequences from an ANSI console line gives exactly the Plain line.
//
// Lines are built with bytes.Buffer. Callers that already own a buffer
// (the sink set does, under its lock) use FormatConsole and FormatFile;
// Console and File borrow one from an internal pool. Buffers larger than
// 64 KiB are not returned to the pool.
package formatter
