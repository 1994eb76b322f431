package crc

// undigest reconstructs the internal (pre-finalize) accumulator value that
// produced an externalized digest d. It is the exact inverse of
// finalizeFrom: undo xorout, undo the refin/refout bit-reversal rule, then
// (for non-reflected engines) undo the left-shift into the high bits.
func (e *Engine) undigest(d uint64) uint64 {
	x := d ^ e.xorOut
	var shifted uint64
	if e.refIn == e.refOut {
		shifted = x
	} else {
		shifted = bitswap(x, e.width)
	}
	if e.refIn {
		return shifted
	}
	return shifted << (64 - e.width)
}

// zeroProp returns the accumulator reached by feeding n zero bytes starting
// from start, using the tableless bitwise kernel — the "append zeros"
// ability Combine is built on. n<=0 is a no-op.
func (e *Engine) zeroProp(start uint64, n int) uint64 {
	if n <= 0 {
		return start
	}
	return bitwiseUpdate(start, e.polyInt, e.refIn, make([]byte, n))
}

// Combine returns the CRC of the concatenation A‖B given crc1 = CRC(A),
// crc2 = CRC(B) and len2 = |B|, without access to A or B.
//
// CRC is GF(2)-linear in its starting register: feeding n zero bytes is a
// fixed linear operator Z^n independent of any message, so for a message M
// of length n, accum(M, start) = Z^n(start) XOR K_M for some K_M that
// doesn't depend on start. Applying that once to derive accum(A‖B, init)
// from accum(A, init) and accum(B, init) gives exactly:
//
//	accum(A‖B, init) = zeroProp(accum(A,init), len(B))
//	                    XOR accum(B, init)
//	                    XOR zeroProp(init, len(B))
//
// which needs only crc1, crc2, len2 and the engine's own configuration —
// no snapshot/restore of engine state is required, since the whole
// computation is a pure function of its inputs.
func (e *Engine) Combine(crc1, crc2 uint64, len2 int) (uint64, error) {
	m := bitmask(e.width)
	if crc1 > m {
		return 0, newRangeError("crc1")
	}
	if crc2 > m {
		return 0, newRangeError("crc2")
	}
	if len2 < 0 {
		return 0, newRangeError("len2")
	}

	c1 := e.undigest(crc1)
	c2 := e.undigest(crc2)
	combined := e.zeroProp(c1, len2) ^ c2 ^ e.zeroProp(e.initInt, len2)
	return e.finalizeFrom(combined), nil
}
