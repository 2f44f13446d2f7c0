package clut

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Run("IntegralRounds", func(t *testing.T) {
		l, err := Identity(16, 255, Integral)
		require.NoError(t, err)
		assert.Equal(t, Value3D{0, 0, 0}, l.At(0, 0, 0))
		assert.Equal(t, Value3D{255, 255, 255}, l.At(15, 15, 15))
		assert.Equal(t, Value3D{85, 102, 119}, l.At(5, 6, 7))
		for _, v := range l.Data {
			assert.Equal(t, math.Trunc(v), v, "integral identity must hold whole samples")
		}
	})
	t.Run("Real", func(t *testing.T) {
		l, err := Identity(5, 1.0, Real)
		require.NoError(t, err)
		assert.Equal(t, Value3D{0.25, 0.5, 0.75}, l.At(1, 2, 3))
	})
	t.Run("InvalidSize", func(t *testing.T) {
		_, err := Identity(1, 255, Integral)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestFromFunc(t *testing.T) {
	t.Run("SamplesUnitCube", func(t *testing.T) {
		l, err := FromFunc(5, func(r, g, b float64) Value3D {
			return Value3D{r, g, b}
		})
		require.NoError(t, err)
		want, err := Identity(5, 1.0, Real)
		require.NoError(t, err)
		if diff := cmp.Diff(want.Data, l.Data); diff != "" {
			t.Fatalf("sampled identity differs from identity grid:\n%s", diff)
		}
		assert.Equal(t, Real, l.Kind)
		assert.Equal(t, 1.0, l.InputDomain)
	})
	t.Run("InvalidSize", func(t *testing.T) {
		_, err := FromFunc(0, func(r, g, b float64) Value3D { return Value3D{} })
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestResample(t *testing.T) {
	t.Run("SameSizeIsExactCopy", func(t *testing.T) {
		l := sequential_lut(t, 3, true)
		out, err := l.Resample(3)
		require.NoError(t, err)
		if diff := cmp.Diff(l.Data, out.Data); diff != "" {
			t.Fatalf("same size resample altered samples:\n%s", diff)
		}
		// A fresh buffer, not an alias.
		out.Data[0] = 999
		assert.Equal(t, float64(0), l.Data[0])
	})
	t.Run("IdentityStaysIdentity", func(t *testing.T) {
		l, err := Identity(16, 255, Integral)
		require.NoError(t, err)
		out, err := l.Resample(8)
		require.NoError(t, err)
		want, err := Identity(8, 255, Integral)
		require.NoError(t, err)
		if diff := cmp.Diff(want.Data, out.Data); diff != "" {
			t.Fatalf("downsampled identity differs from identity grid:\n%s", diff)
		}
		assert.Equal(t, Integral, out.Kind)
		assert.Equal(t, 255.0, out.InputDomain)
	})
	t.Run("Upsample", func(t *testing.T) {
		l, err := Identity(4, 1.0, Real)
		require.NoError(t, err)
		out, err := l.Resample(9)
		require.NoError(t, err)
		assert.Equal(t, 9, out.SampleCount)
		dist := out.SampleDistance()
		for b := range 9 {
			for g := range 9 {
				for r := range 9 {
					v := out.At(r, g, b)
					assert.InDelta(t, float64(r)*dist, v[0], 1e-9)
					assert.InDelta(t, float64(g)*dist, v[1], 1e-9)
					assert.InDelta(t, float64(b)*dist, v[2], 1e-9)
				}
			}
		}
	})
	t.Run("BlueFastestLayoutPreserved", func(t *testing.T) {
		src := sequential_lut(t, 3, false)
		out, err := src.Resample(3)
		require.NoError(t, err)
		assert.False(t, out.RedIncrementsFastest)
		assert.Equal(t, src.At(2, 1, 0), out.At(2, 1, 0))
	})
	t.Run("InvalidSize", func(t *testing.T) {
		l := sequential_lut(t, 2, true)
		_, err := l.Resample(1)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
