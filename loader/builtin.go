package loader

import "sort"

// Built-in demo programs, usable without any ROM file on disk.
//
// glyphs draws the first eight font glyphs across the top of the screen and
// then parks in a tight jump loop:
//
//	0200  6100  V1 := 0          ; x position
//	0202  6200  V2 := 0          ; y position
//	0204  6300  V3 := 0          ; glyph index
//	0206  f329  I := font[V3]
//	0208  d125  Draw(V1, V2, 5)
//	020a  7108  V1 += 8
//	020c  7301  V3 += 1
//	020e  3308  SkipNext if V3 == 8
//	0210  1206  Jump 0206
//	0212  1212  Jump 0212
var builtins = map[string][]byte{
	"glyphs": {
		0x61, 0x00,
		0x62, 0x00,
		0x63, 0x00,
		0xF3, 0x29,
		0xD1, 0x25,
		0x71, 0x08,
		0x73, 0x01,
		0x33, 0x08,
		0x12, 0x06,
		0x12, 0x12,
	},
}

// Builtin returns the named built-in program.
func Builtin(name string) (*ROM, bool) {
	data, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return &ROM{Name: name, Data: data}, true
}

// BuiltinNames lists the available built-in programs, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
