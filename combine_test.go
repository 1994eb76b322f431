package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCombineMatchesConcatenation checks that digest(a‖b) ==
// combine(digest(a), digest(b), len(b)) across a sample of catalogue
// entries covering both reflected and non-reflected configurations.
func TestCombineMatchesConcatenation(t *testing.T) {
	names := []string{
		"crc-32", "crc-32c", "crc-32-bzip2", "crc-16-xmodem",
		"crc-16-modbus", "crc-8-smbus", "crc-64-xz", "crc-5-usb",
	}
	a := []byte("12345")
	b := []byte("6789")
	ab := append(append([]byte{}, a...), b...)

	for _, name := range names {
		whole, err := New(WithName(name))
		require.NoError(t, err, name)
		whole.Update(ab)
		want := whole.Digest()

		ea, err := New(WithName(name))
		require.NoError(t, err, name)
		ea.Update(a)
		da := ea.Digest()

		eb, err := New(WithName(name))
		require.NoError(t, err, name)
		eb.Update(b)
		db := eb.Digest()

		got, err := whole.Combine(da, db, len(b))
		require.NoError(t, err, name)
		require.Equalf(t, want, got, "combine mismatch for %s", name)
	}
}

// TestCombineWorkedExample pins a literal worked example: combining the
// CRC-32 of "12345" and "6789" must equal the CRC-32 of "123456789".
func TestCombineWorkedExample(t *testing.T) {
	whole, err := New(WithName("crc-32"))
	require.NoError(t, err)
	whole.Update([]byte("123456789"))
	want := whole.Digest()
	require.Equal(t, uint64(0xCBF43926), want)

	ea, err := New(WithName("crc-32"))
	require.NoError(t, err)
	ea.Update([]byte("12345"))
	da := ea.Digest()

	eb, err := New(WithName("crc-32"))
	require.NoError(t, err)
	eb.Update([]byte("6789"))
	db := eb.Digest()

	combined, err := whole.Combine(da, db, 4)
	require.NoError(t, err)
	require.Equal(t, want, combined)
}

// TestCombineRangeErrors exercises Combine's "operands out of range fail"
// contract.
func TestCombineRangeErrors(t *testing.T) {
	e, err := New(WithWidth(8), WithPoly(0x07))
	require.NoError(t, err)

	_, err = e.Combine(0x1FF, 0x00, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = e.Combine(0x00, 0x1FF, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = e.Combine(0x00, 0x00, -1)
	require.ErrorIs(t, err, ErrOverflow)
}
