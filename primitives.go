package crc

import (
	"math/bits"
	"unsafe"
)

// bitmask returns the low w bits set to 1, for w in 0..=64. It avoids the
// undefined 1<<64 shift by special-casing the full-width case.
func bitmask(w uint8) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<w - 1
}

// bitswap reverses the low w bits of x and returns them LSb-aligned with all
// higher bits zero. It reverses the full 64-bit word (byte-swap-then-bit-swap,
// the same swar pattern the spec calls for) and shifts the result down so the
// w bits that used to be the low w bits now occupy the low w bits again, in
// reverse order.
func bitswap(x uint64, w uint8) uint64 {
	if w == 0 {
		return 0
	}
	return bits.Reverse64(x) >> (64 - w)
}

// byteswap64 reverses the eight bytes of x.
func byteswap64(x uint64) uint64 {
	return bits.ReverseBytes64(x)
}

// hostLittleEndian reports whether the running process is little-endian.
// The wordwise kernel uses this to decide whether its table needs
// byte-swapped entries for a naked 64-bit load to behave correctly.
var hostLittleEndian = func() bool {
	var probe uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&probe))
	return b[0] == 1
}()
