// Package core defines the shared types used across sinklog.
//
// It provides the Level type for severity filtering and the Record type
// that represents a single log event on its way to the sinks.
//
// Levels are ordered from the most verbose (TraceLevel) to the most
// severe (ErrorLevel). OffLevel sits above ErrorLevel and is only ever used
// as a filter value: a filter set to OffLevel lets nothing through, which is
// also the state of the logger before it is installed.
//
// Origin and OriginOf resolve the package path of a call site. Front-ends
// use it to fill Record.Origin so every line names the package that
// produced it.
package core
