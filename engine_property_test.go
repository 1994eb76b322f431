package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKernelsAgree checks that bitwise(s) == bytewise(s) == wordwise(s) for
// every catalogue entry and a handful of inputs of varying length
// (including lengths that exercise the wordwise alignment prelude/tail in
// every possible remainder).
func TestKernelsAgree(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("1"),
		[]byte("123456789"),
		[]byte("0123456789abcdef0"),
		make([]byte, 37),
		make([]byte, 64),
	}
	for name, cfg := range TemplatesAvailable() {
		for _, data := range inputs {
			var digests [3]uint64
			for i, method := range []Method{MethodBitwise, MethodBytewise, MethodWordwise} {
				e, err := New(WithWidth(cfg.Width), WithPoly(cfg.Poly), WithInit(cfg.Init),
					WithRefIn(cfg.RefIn), WithRefOut(cfg.RefOut), WithXorOut(cfg.XorOut),
					WithMethod(method))
				require.NoErrorf(t, err, "New(%s)", name)
				e.Update(data)
				digests[i] = e.Digest()
			}
			require.Equalf(t, digests[0], digests[1], "%s len=%d: bitwise != bytewise", name, len(data))
			require.Equalf(t, digests[1], digests[2], "%s len=%d: bytewise != wordwise", name, len(data))
		}
	}
}

// TestDigestIdempotent checks that repeated Digest() calls never mutate
// state and always return the same value.
func TestDigestIdempotent(t *testing.T) {
	e, err := New(WithName("crc-32"))
	require.NoError(t, err)
	e.Update([]byte("123456789"))

	first := e.Digest()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, e.Digest())
	}
}

// TestCopyIndependence checks that Copy() produces an engine whose further
// updates never affect the original, and vice versa.
func TestCopyIndependence(t *testing.T) {
	e, err := New(WithName("crc-32"))
	require.NoError(t, err)
	e.Update([]byte("12345"))

	c := e.Copy()
	require.Equal(t, e.Digest(), c.Digest())

	c.Update([]byte("6789"))
	require.NotEqual(t, e.Digest(), c.Digest())

	e.Update([]byte("xyz"))
	whole, err := New(WithName("crc-32"))
	require.NoError(t, err)
	whole.Update([]byte("123456789"))
	require.Equal(t, whole.Digest(), c.Digest())
}

// TestBoundaryWidths checks that width=1 and width=64 both validate,
// update, digest and combine cleanly.
func TestBoundaryWidths(t *testing.T) {
	for _, w := range []uint8{1, 64} {
		e, err := New(WithWidth(w), WithPoly(1))
		require.NoErrorf(t, err, "width=%d", w)
		e.Update([]byte("123456789"))
		d := e.Digest()
		require.LessOrEqualf(t, d, bitmask(w), "width=%d digest must fit in width bits", w)

		e2, err := New(WithWidth(w), WithPoly(1))
		require.NoError(t, err)
		e2.Update([]byte("123"))
		d1 := e2.Digest()

		e3, err := New(WithWidth(w), WithPoly(1))
		require.NoError(t, err)
		e3.Update([]byte("456789"))
		d2 := e3.Digest()

		whole, err := New(WithWidth(w), WithPoly(1))
		require.NoError(t, err)
		combined, err := whole.Combine(d1, d2, 6)
		require.NoError(t, err)
		require.Equal(t, d, combined)
	}
}

// TestInvalidConfigRejected checks that poly=0 and width=0 (and width
// out of range) all fail with overflow, before any Engine is observable.
func TestInvalidConfigRejected(t *testing.T) {
	_, err := New(WithWidth(8), WithPoly(0))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = New(WithWidth(0), WithPoly(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = New(WithWidth(65), WithPoly(1))
	require.ErrorIs(t, err, ErrOverflow)
}

// TestNoOpUpdatesLeaveDirtyUnchanged checks that an empty Update, ZeroBytes(0)
// and ZeroBits(0) are true no-ops.
func TestNoOpUpdatesLeaveDirtyUnchanged(t *testing.T) {
	e, err := New(WithName("crc-32"))
	require.NoError(t, err)
	before := e.Digest()

	e.Update(nil)
	e.Update([]byte{})
	require.NoError(t, e.ZeroBytes(0))
	require.NoError(t, e.ZeroBits(0))

	require.Equal(t, before, e.Digest())
}

// TestUnknownNameAndMethod checks the unknown-catalogue-name and
// unknown-method error paths.
func TestUnknownNameAndMethod(t *testing.T) {
	_, err := New(WithName("not-a-real-crc"))
	require.ErrorIs(t, err, ErrKey)

	_, err = New(WithMethod(Method(99)))
	require.ErrorIs(t, err, ErrKey)
}
