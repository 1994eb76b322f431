package crc

// Config is an immutable tuple of CRC parameters following the Rocksoft/CRC
// catalogue model: (width, poly, init, refin, refout, xorout). It is cheap
// to copy and carries no internal state — internalization into an Engine
// happens at construction time (see engine.go).
type Config struct {
	Width  uint8  // bit width of the CRC, 1..=64
	Poly   uint64 // generator polynomial, normal (non-reflected) form
	Init   uint64 // nominal initial register value
	RefIn  bool   // whether input bytes are bit-reflected before feeding
	RefOut bool   // whether the final register is bit-reflected before xorout
	XorOut uint64 // final XOR mask
}

// Size-related module constants.
const (
	ByteWidth = 8                // bits per byte
	MaxWidth  = 64                // largest supported CRC width
	MaxValue  = ^uint64(0)        // largest representable 64-bit CRC value
)

// DefaultName is used by New when the caller supplies no name and no
// explicit parameter fields.
const DefaultName = "crc-32"

func (c Config) mask() uint64 { return bitmask(c.Width) }

// validate range-checks width, poly, init and xorout in that order and
// returns a distinctly tagged error for the first field that's out of
// range. refin/refout need no validation: any Go bool value is already
// normalized to 0/1.
func (c Config) validate() error {
	if c.Width < 1 || c.Width > MaxWidth {
		return newRangeError("width")
	}
	m := c.mask()
	if c.Poly < 1 || c.Poly > m {
		return newRangeError("poly")
	}
	if c.Init > m {
		return newRangeError("init")
	}
	if c.XorOut > m {
		return newRangeError("xorout")
	}
	return nil
}
