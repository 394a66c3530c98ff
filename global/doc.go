// Package global is the process-wide logger slot.
//
// A Slot accepts exactly one Sink (Enabled, Log, Flush) for the lifetime of
// the process and keeps an atomic max-level hint next to it. Front-ends
// check the hint before they format anything, so a disabled call costs one
// atomic load:
//
//	global.Infof("listening on %s", addr)
//
// Installing a second, different sink fails with ErrSlotOccupied. The hint
// starts at OffLevel, so nothing is dispatched until the installed sink
// raises it; package logger does that when it installs itself.
//
// Each record carries the package path of the calling function as its
// origin.
package global
