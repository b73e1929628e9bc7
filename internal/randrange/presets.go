package randrange

import "math/big"

// presets are well-known named ranges. Character classes follow ASCII.
var presets = map[string][]Range{
	"ascii":     {New(32, 127)},
	"ascii-ext": {New(32, 127), New(160, 256)},

	"alphabet": alphabet(),
	"letters":  alphabet(),
	"[a-zA-Z]": alphabet(),

	"capitals":  {New(65, 91)},
	"uppercase": {New(65, 91)},
	"majuscule": {New(65, 91)},
	"[A-Z]":     {New(65, 91)},

	"lowercase": {New(97, 123)},
	"minuscule": {New(97, 123)},
	"[a-z]":     {New(97, 123)},

	"numbers": {New(48, 58)},
	"[0-9]":   {New(48, 58)},

	// Printable ASCII except space and "&*;<=>|.
	"password": {
		Single(33),
		Inclusive(35, 37),
		Inclusive(39, 41),
		Inclusive(43, 58),
		Inclusive(63, 123),
		Inclusive(125, 126),
	},

	"i8":  {New(-128, 128)},
	"u8":  {New(0, 256)},
	"i16": {New(-32768, 32768)},
	"u16": {New(0, 65536)},
	"i32": {New(-2147483648, 2147483648)},
	"u32": {New(0, 4294967296)},
	"i64": {{From: big.NewInt(-9223372036854775808), To: pow2(63)}},
	"u64": {{From: big.NewInt(0), To: pow2(64)}},
}

func alphabet() []Range {
	return []Range{New(65, 91), New(97, 123)}
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}
