// Package bridge routes records from other logging front-ends into a
// global.Slot, so libraries written against slog, zap, logrus or zerolog
// end up in the same sinks as global.Info and friends.
//
// Each adapter maps the front-end's levels onto sinklog's five levels,
// renders structured fields into the message as key=value pairs and
// resolves the origin to the package that made the logging call.
//
//	zl := zap.New(bridge.NewZapCore(nil))
//	zl.Info("started", zap.Int("port", 8080))
//	// [INFO  github.com/acme/app] started port=8080
//
// A nil slot means global.Default().
package bridge
