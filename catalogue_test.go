package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCatalogueCheckValues runs the Rocksoft "check" value for a sample of
// well-known entries: CRC("123456789") with each entry's own configuration.
// The check values are the ones published in the CRC catalogue this table
// was transcribed from.
func TestCatalogueCheckValues(t *testing.T) {
	cases := []struct {
		name  string
		check uint64
	}{
		{"crc-8-smbus", 0xF4},
		{"crc-8-autosar", 0xDF},
		{"crc-16-ibm-sdlc", 0x906E},
		{"crc-16-modbus", 0x4B37},
		{"crc-16-xmodem", 0x31C3},
		{"crc-32", 0xCBF43926},
		{"crc-32c", 0xE3069283},
		{"crc-32-bzip2", 0xFC891918},
		{"crc-64-xz", 0x995DC9BBDF1939FA},
		{"crc-64-ecma-182", 0x6C40DF5F0B497347},
	}
	for _, tc := range cases {
		e, err := New(WithName(tc.name))
		require.NoError(t, err, tc.name)
		e.Update([]byte("123456789"))
		require.Equalf(t, tc.check, e.Digest(), "check value for %s", tc.name)
	}
}

// TestFindConfigUnknown exercises the "name not found" path, including a
// name that's a strict prefix of real entries: "crc-16-ibm" must not resolve
// to "crc-16-ibm-3740" or "crc-16-ibm-sdlc".
func TestFindConfigUnknown(t *testing.T) {
	_, ok := FindConfig("not-a-real-crc")
	require.False(t, ok)

	_, ok = FindConfig("crc-16-ibm")
	require.False(t, ok, "bare prefix of real entries must not match")
}

// TestCatalogueAliasesShareConfig checks that names documented as aliases
// of one another (CRC-32/ISO-HDLC family) really do resolve to the same Config.
func TestCatalogueAliasesShareConfig(t *testing.T) {
	a, ok := FindConfig("crc-32")
	require.True(t, ok)
	b, ok := FindConfig("crc-32-iso-hdlc")
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestTemplatesAvailableNonEmpty(t *testing.T) {
	m := TemplatesAvailable()
	require.NotEmpty(t, m)
	cfg, ok := m["crc-32"]
	require.True(t, ok)
	require.Equal(t, uint8(32), cfg.Width)
}
