package crc

import "testing"

// TestCRCAlgorithms feeds each vector as one shot, then again in growing
// chunks (1, then 2, then 4, ... bytes per Update), and checks every
// kernel against the same expected digest.
func TestCRCAlgorithms(t *testing.T) {
	doTest := func(name string, data string, want uint64) {
		for _, method := range []Method{MethodBitwise, MethodBytewise, MethodWordwise} {
			e, err := New(WithName(name), WithMethod(method))
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			e.Update([]byte(data))
			if got := e.Digest(); got != want {
				t.Errorf("%s method=%d: got 0x%X for %q, want 0x%X", name, method, got, data, want)
			}

			// same test feeding data in chunks of growing size
			e2, _ := New(WithName(name), WithMethod(method))
			start, step := 0, 1
			for start < len(data) {
				end := start + step
				if end > len(data) {
					end = len(data)
				}
				e2.Update([]byte(data[start:end]))
				start = end
				step *= 2
			}
			if got := e2.Digest(); got != want {
				t.Errorf("%s method=%d chunked: got 0x%X for %q, want 0x%X", name, method, got, data, want)
			}
		}
	}

	longText := "Whenever digital data is stored or interfaced, data corruption might occur. Since the beginning of computer science, people have been thinking of ways to deal with this type of problem. For serial data they came up with the solution to attach a parity bit to each sent byte. This simple detection mechanism works if an odd number of bits in a byte changes, but an even number of false bits in one byte will not be detected by the parity check. To overcome this problem people have searched for mathematical sound mechanisms to detect multiple false bits."

	doTest("crc-16-ccitt-false", "123456789", 0x29B1)
	doTest("crc-16-ccitt-false", "12345678901234567890", 0xDA31)
	doTest("crc-16-ccitt-false", "Introduction on CRC calculations", 0xC87E)
	doTest("crc-16-ccitt-false", longText, 0xD6ED)

	doTest("xmodem", "123456789", 0x31C3)
	doTest("xmodem", "12345678901234567890", 0x2C89)
	doTest("xmodem", "Introduction on CRC calculations", 0x3932)
	doTest("xmodem", longText, 0x4E86)

	doTest("kermit", "123456789", 0x2189)

	doTest("crc-32", "123456789", 0xCBF43926)
	doTest("crc-32", "12345678901234567890", 0x906319F2)
	doTest("crc-32", "Introduction on CRC calculations", 0x814F2B45)
	doTest("crc-32", longText, 0x8F273817)

	doTest("crc-32c", "123456789", 0xE3069283)
	doTest("crc-32c", "12345678901234567890", 0xA8B4A6B9)
	doTest("crc-32c", "Introduction on CRC calculations", 0x54F98A9E)
	doTest("crc-32c", longText, 0x864FDAFC)

	doTest("crc-64-xz", "123456789", 0x995DC9BBDF1939FA)
	doTest("crc-64-xz", "12345678901234567890", 0x0DA1B82EF5085A4A)
	doTest("crc-64-xz", "Introduction on CRC calculations", 0xCF8C40119AE90DCB)
	doTest("crc-64-xz", longText, 0x31610F76CFB272A5)
}

func TestDigestSizes(t *testing.T) {
	testWidth := func(width uint8, expectedSize int) {
		e, err := New(WithWidth(width), WithPoly(1))
		if err != nil {
			t.Fatalf("New(width=%d): %v", width, err)
		}
		if n := len(e.DigestBytes()); n != expectedSize {
			t.Errorf("width %d: DigestBytes len %d, want %d", width, n, expectedSize)
		}
		if bs := e.BlockSize(); bs != 1 {
			t.Errorf("width %d: BlockSize %d, want 1", width, bs)
		}
	}

	testWidth(3, 1)
	testWidth(8, 1)
	testWidth(12, 2)
	testWidth(16, 2)
	testWidth(32, 4)
	testWidth(64, 8)
}

func BenchmarkCCITTFalse(b *testing.B) {
	data := []byte("Whenever digital data is stored or interfaced, data corruption might occur. Since the beginning of computer science, people have been thinking of ways to deal with this type of problem. For serial data they came up with the solution to attach a parity bit to each sent byte. This simple detection mechanism works if an odd number of bits in a byte changes, but an even number of false bits in one byte will not be detected by the parity check. To overcome this problem people have searched for mathematical sound mechanisms to detect multiple false bits.")
	for i := 0; i < b.N; i++ {
		e, _ := New(WithName("crc-16-ccitt-false"))
		e.Update(data)
		e.Digest()
	}
}
