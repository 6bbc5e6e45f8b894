package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler"
)

// slog levels for the test severities. They reuse the core ranks, which
// sit above slog.LevelError and so never collide with slog's own levels.
const (
	LevelTestStart     = slog.Level(core.StartLevel)
	LevelTestEnd       = slog.Level(core.EndLevel)
	LevelTestPass      = slog.Level(core.PassLevel)
	LevelTestKnownFail = slog.Level(core.KnownFailLevel)
	LevelTestFail      = slog.Level(core.FailLevel)
	LevelProcessCrash  = slog.Level(core.CrashLevel)
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// handler.Handler. Record attributes become keyword arguments of the
// message template.
type SlogHandler struct {
	handler handler.Handler
	name    string
	level   core.Level
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. Entries are attributed to the logger called name.
func NewSlogHandler(h handler.Handler, name string, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		name:    name,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Logger = s.name
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message

	// Pre-configured attrs only apply when the record has its own
	if record.NumAttrs() > 0 && len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendAttrFields(entry.Fields, s.group, a)
		return true
	})

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttrFields(newAttrs, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := joinKey(s.group, name)
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		name:    s.name,
		level:   s.level,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Test severity
// levels map to themselves.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= LevelTestStart && level <= LevelProcessCrash:
		return core.Level(level)
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttrFields converts a slog.Attr to core fields, prepending the
// group prefix if present. A group attr expands to one field per member,
// keyed "group.member"; an empty group adds nothing.
func appendAttrFields(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, member := range a.Value.Group() {
			dst = appendAttrFields(dst, prefix, member)
		}
		return dst
	}
	if a.Equal(slog.Attr{}) {
		return dst
	}
	return append(dst, slogAttrToField(joinKey(group, a.Key), a.Value))
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// slogAttrToField converts a resolved, non-group slog.Value to a core.Field.
func slogAttrToField(key string, v slog.Value) core.Field {
	switch v.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: v.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: v.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: v.Float64()}
	case slog.KindBool:
		val := int64(0)
		if v.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Type: core.TimeType, Int64: v.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(v.Duration())}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v.Any()}
	}
}
