package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette is one console color theme.
type palette struct {
	fg       string
	time     string
	accentA  string
	accentB  string
	accentC  string
	id       string
	number   string
	yellow   string
	red      string
	redBg    string
	yellowBg string
}

var themes = map[string]palette{
	// Everforest Dark: natural greens
	"everforest": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;107m",
		accentA:  "\x1b[38;5;108m",
		accentB:  "\x1b[38;5;65m",
		accentC:  "\x1b[38;5;208m",
		id:       "\x1b[38;5;109m",
		number:   "\x1b[38;5;108m",
		yellow:   "\x1b[38;5;179m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;52m",
		yellowBg: "\x1b[48;5;58m",
	},
	// Gruvbox Dark: warm, muted
	"gruvbox": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;108m",
		accentA:  "\x1b[38;5;208m",
		accentB:  "\x1b[38;5;214m",
		accentC:  "\x1b[38;5;142m",
		id:       "\x1b[38;5;109m",
		number:   "\x1b[38;5;175m",
		yellow:   "\x1b[38;5;214m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;88m",
		yellowBg: "\x1b[48;5;58m",
	},
}

var currentTheme = "everforest"

// SetTheme selects the console color scheme. Unknown names are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

// colorComponent hashes a logger name to one of the accents so that lines of
// the same component share a color.
func colorComponent(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	p := colors()
	switch hash % 3 {
	case 0:
		return p.accentA
	case 1:
		return p.accentB
	}
	return p.accentC
}

var bufferPool = buffer.NewPool()

// minimalEncoder is a compact console encoder:
//
//	13:04:35  t.dart  Rendered file  file=models.dart duration_ms=3
type minimalEncoder struct {
	zapcore.Encoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	p := colors()
	final := bufferPool.Get()

	final.AppendString(p.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(p.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if rendered := renderFields(fields); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN and above
func levelColorString(level zapcore.Level) string {
	p := colors()
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return colorBold + p.yellowBg + p.yellow + "WARN" + colorReset
	default:
		return colorBold + p.redBg + p.red + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: typegen.dart -> t.dart
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// fieldValue renders any zap field through a map encoder, so no field type
// is dropped. ok is false for fields that carry nothing (zap.Error(nil)).
func fieldValue(field zapcore.Field) (string, bool) {
	m := zapcore.NewMapObjectEncoder()
	field.AddTo(m)
	v, ok := m.Fields[field.Key]
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}

// renderFields writes every field as key=value. Paths are highlighted and
// durations get a unit.
func renderFields(fields []zapcore.Field) string {
	p := colors()
	var values []string
	for _, field := range fields {
		val, ok := fieldValue(field)
		if !ok {
			continue
		}
		switch field.Key {
		case FieldFile, FieldPackage, FieldModel, FieldOutputDir:
			val = p.id + val + colorReset
		case FieldDurationMS:
			val = p.number + val + colorReset + "ms"
		case FieldCount:
			val = p.number + val + colorReset
		}
		values = append(values, field.Key+"="+val)
	}
	return strings.Join(values, " ")
}
