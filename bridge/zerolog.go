package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/global"
)

// ZerologWriter is a zerolog.LevelWriter that decodes each JSON event and
// forwards it to a global.Slot.
type ZerologWriter struct {
	slot *global.Slot
}

// NewZerologWriter creates a writer logging to slot (global.Default() when nil).
func NewZerologWriter(slot *global.Slot) *ZerologWriter {
	return &ZerologWriter{slot: slotOrDefault(slot)}
}

// NewZerologLogger returns a zerolog.Logger writing through a ZerologWriter.
// Its own level is Trace; filtering is left to the installed logger.
func NewZerologLogger(slot *global.Slot) zerolog.Logger {
	return zerolog.New(NewZerologWriter(slot)).Level(zerolog.TraceLevel)
}

// Write handles events written without a level; they are logged at Info.
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter. Events that cannot be decoded
// are reported as an error.
func (w *ZerologWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	level, ok := FromZerolog(l)
	if !ok || !w.slot.Enabled(level) {
		return len(p), nil
	}

	msg, fields, err := decodeZerologEvent(p)
	if err != nil {
		return 0, fmt.Errorf("decode zerolog event: %w", err)
	}

	w.slot.Log(core.Record{
		Level:   level,
		Origin:  callerOrigin("github.com/rs/zerolog"),
		Message: core.MessageWithFields(msg, fields),
	})
	return len(p), nil
}

// decodeZerologEvent reads one JSON object keeping the key order. The
// level, time, caller and message keys are consumed; the rest become fields.
func decodeZerologEvent(p []byte) (string, []core.Field, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	if tok, err := dec.Token(); err != nil {
		return "", nil, err
	} else if tok != json.Delim('{') {
		return "", nil, fmt.Errorf("expected object, got %v", tok)
	}

	var msg string
	var fields []core.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return "", nil, err
		}

		switch key {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.CallerFieldName:
			continue
		case zerolog.MessageFieldName:
			msg = rawString(raw)
		default:
			fields = append(fields, core.String(key, rawString(raw)))
		}
	}
	return msg, fields, nil
}

// rawString unquotes JSON strings and returns any other value as written.
func rawString(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
