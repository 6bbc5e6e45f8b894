package zapbridge

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler"
)

// Core is a zapcore.Core that hands zap entries to a handler.Handler.
// Zap fields become keyword arguments of the message template.
type Core struct {
	handler handler.Handler
	name    string
	level   core.Level
	fields  []core.Field
}

// NewCore creates a Core writing to h. name is used for entries whose
// zap logger has no name.
func NewCore(h handler.Handler, name string, level core.Level) *Core {
	return &Core{handler: h, name: name, level: level}
}

// New returns a zap.Logger backed by a Core. Stack traces are only
// captured above the test severities.
func New(h handler.Handler, name string, level core.Level, opts ...zap.Option) *zap.Logger {
	opts = append([]zap.Option{zap.AddStacktrace(ProcessCrashLevel + 1)}, opts...)
	return zap.New(NewCore(h, name, level), opts...)
}

// Enabled reports whether entries at l are written
func (c *Core) Enabled(l zapcore.Level) bool {
	return FromZapLevel(l) >= c.level
}

// With returns a Core carrying extra keyword arguments
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &Core{
		handler: c.handler,
		name:    c.name,
		level:   c.level,
		fields:  appendZapFields(newFields, fields),
	}
}

// Check adds the core to ce when the entry's level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and passes it to the handler. Fields from
// With are only used when the call passes fields of its own.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Logger = ent.LoggerName
	if entry.Logger == "" {
		entry.Logger = c.name
	}
	entry.Level = FromZapLevel(ent.Level)
	entry.Message = ent.Message
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, c.fields...)
		entry.Fields = appendZapFields(entry.Fields, fields)
	}

	return c.handler.Handle(entry)
}

// Sync is a no-op; handlers write synchronously.
func (c *Core) Sync() error {
	return nil
}

// appendZapFields encodes zap fields and appends them as core fields,
// sorted by key.
func appendZapFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	if len(fields) == 0 {
		return dst
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = append(dst, toField(k, enc.Fields[k]))
	}
	return dst
}

func toField(key string, v interface{}) core.Field {
	switch val := v.(type) {
	case string:
		return core.Field{Key: key, Type: core.StringType, Str: val}
	case bool:
		i := int64(0)
		if val {
			i = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: i}
	case int:
		return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
	case int64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: val}
	case int32:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
	case float64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: val}
	case time.Duration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
	case time.Time:
		return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v}
	}
}
