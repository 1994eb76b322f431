package crc

import (
	"encoding/binary"
	"unsafe"
)

// wordTable is the slice-by-8 accelerator: eight 256-entry tables, XOR'd
// together per 8-byte chunk of input.
type wordTable [8][256]uint64

// buildWordTable derives wordTable from a byteTable by the standard
// slicing-by-N recurrence: slice s is what slice s-1 becomes after one more
// (implicit zero) byte is advanced through the byte table. Entries are
// pre-byteswapped when the host's native byte order doesn't match what the
// fast loop's naked word load needs for this orientation, so the loop body
// never has to byteswap per iteration.
func buildWordTable(bt *byteTable, refIn bool) *wordTable {
	var wt wordTable
	for i := 0; i < 256; i++ {
		wt[0][i] = bt[i]
	}
	for s := 1; s < 8; s++ {
		for i := 0; i < 256; i++ {
			prev := wt[s-1][i]
			if refIn {
				wt[s][i] = bt[byte(prev)] ^ (prev >> 8)
			} else {
				wt[s][i] = bt[byte(prev>>56)] ^ (prev << 8)
			}
		}
	}
	if needByteswap(refIn) {
		for s := 0; s < 8; s++ {
			for i := 0; i < 256; i++ {
				wt[s][i] = byteswap64(wt[s][i])
			}
		}
	}
	return &wt
}

// needByteswap reports whether the wordwise table (and the accumulator
// around the fast loop) must be byteswapped for the given refin, given the
// process's native byte order: little-endian host + non-reflected CRC, or
// big-endian host + reflected CRC.
func needByteswap(refIn bool) bool {
	if hostLittleEndian {
		return !refIn
	}
	return refIn
}

// wordwiseUpdate is the slice-by-8 kernel. It aligns to an 8-byte boundary
// via the bytewise kernel, runs the fast 8-bytes-per-iteration body, then
// mops up the non-8-aligned tail the same way.
func wordwiseUpdate(accum uint64, bt *byteTable, wt *wordTable, data []byte, refIn bool) uint64 {
	i := 0
	for i < len(data) && addrOf(data, i)%8 != 0 {
		accum = bytewiseUpdateByte(accum, bt, data[i], refIn)
		i++
	}

	swap := needByteswap(refIn)
	if swap {
		accum = byteswap64(accum)
	}

	for len(data)-i >= 8 {
		word := loadNative64(data[i : i+8])
		accum ^= word
		var next uint64
		if hostLittleEndian {
			for s := 0; s < 8; s++ {
				next ^= wt[7-s][byte(accum>>(8*s))]
			}
		} else {
			for s := 0; s < 8; s++ {
				next ^= wt[7-s][byte(accum>>(56-8*s))]
			}
		}
		accum = next
		i += 8
	}

	if swap {
		accum = byteswap64(accum)
	}

	for ; i < len(data); i++ {
		accum = bytewiseUpdateByte(accum, bt, data[i], refIn)
	}
	return accum
}

// addrOf returns the address of data[i], used only to decide how many
// leading bytes the alignment prelude must consume; it performs no unsafe
// load of the data itself.
func addrOf(data []byte, i int) uintptr {
	return uintptr(unsafe.Pointer(&data[i]))
}

// loadNative64 loads 8 bytes as a single 64-bit word in the host's native
// byte order — the safe, portable equivalent of a naked aligned pointer
// load, paired with buildWordTable's pre-byteswapped entries.
func loadNative64(b []byte) uint64 {
	if hostLittleEndian {
		return binary.LittleEndian.Uint64(b)
	}
	return binary.BigEndian.Uint64(b)
}
