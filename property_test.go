package arraystring_test

import (
	"fmt"
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
	"testing"
	"unicode/utf8"

	"github.com/bjaus/arraystring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const sweep = 20000

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xa11c))
}

func TestIntegersRoundTrip(t *testing.T) {
	t.Parallel()
	r := newRand()
	for range sweep {
		u := r.Uint64()
		i := int64(u)

		s8 := textOf(arraystring.FormatInt8(int8(i)))
		require.LessOrEqual(t, len(s8), arraystring.MaxLenInt8)
		got8, err := strconv.ParseInt(s8, 10, 8)
		require.NoError(t, err)
		require.Equal(t, int64(int8(i)), got8)

		su16 := textOf(arraystring.FormatUint16(uint16(u)))
		require.LessOrEqual(t, len(su16), arraystring.MaxLenUint16)
		gotu16, err := strconv.ParseUint(su16, 10, 16)
		require.NoError(t, err)
		require.Equal(t, uint64(uint16(u)), gotu16)

		s32 := textOf(arraystring.FormatInt32(int32(i)))
		require.LessOrEqual(t, len(s32), arraystring.MaxLenInt32)
		got32, err := strconv.ParseInt(s32, 10, 32)
		require.NoError(t, err)
		require.Equal(t, int64(int32(i)), got32)

		su64 := textOf(arraystring.FormatUint64(u))
		require.LessOrEqual(t, len(su64), arraystring.MaxLenUint64)
		require.Equal(t, strconv.FormatUint(u, 10), su64)

		s64 := textOf(arraystring.FormatInt64(i))
		require.LessOrEqual(t, len(s64), arraystring.MaxLenInt64)
		require.Equal(t, strconv.FormatInt(i, 10), s64)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	t.Parallel()
	r := newRand()
	for range sweep {
		v := math.Float64frombits(r.Uint64())
		s := textOf(arraystring.FormatFloat64(v))
		require.LessOrEqual(t, len(s), arraystring.MaxLenFloat64, "%s", s)
		require.Equal(t, fmt.Sprint(v), s)
		if math.IsNaN(v) {
			require.Equal(t, "NaN", s)
			continue
		}
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "%s", s)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	t.Parallel()
	r := newRand()
	for range sweep {
		v := math.Float32frombits(r.Uint32())
		s := textOf(arraystring.FormatFloat32(v))
		require.LessOrEqual(t, len(s), arraystring.MaxLenFloat32, "%s", s)
		require.Equal(t, fmt.Sprint(v), s)
		if math.IsNaN(float64(v)) {
			continue
		}
		got, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err)
		require.Equal(t, math.Float32bits(v), math.Float32bits(float32(got)), "%s", s)
	}
}

func TestRuneRoundTrip(t *testing.T) {
	t.Parallel()
	for r := rune(0); r <= utf8.MaxRune; r += 97 {
		s := textOf(arraystring.FormatRune(r))
		require.LessOrEqual(t, len(s), arraystring.MaxLenRune)
		require.Equal(t, string(r), s)
	}
}

func TestInt128MatchesBig(t *testing.T) {
	t.Parallel()
	r := newRand()
	for range sweep {
		v := arraystring.Int128{Hi: int64(r.Uint64()), Lo: r.Uint64()}
		s := textOf(arraystring.FormatInt128(v))
		require.LessOrEqual(t, len(s), arraystring.MaxLenInt128)
		require.Equal(t, int128Big(v).String(), s)

		u := arraystring.Uint128{Hi: r.Uint64() >> r.UintN(64), Lo: r.Uint64()}
		su := textOf(arraystring.FormatUint128(u))
		require.LessOrEqual(t, len(su), arraystring.MaxLenUint128)
		require.Equal(t, uint128Big(u).String(), su)
	}
}

func TestUint128PowersOfTen(t *testing.T) {
	t.Parallel()
	ten := big.NewInt(10)
	p := big.NewInt(1)
	for k := 0; k <= 38; k++ {
		v := bigUint128(p)
		assert.Equal(t, p.String(), textOf(arraystring.FormatUint128(v)), "10^%d", k)

		below := new(big.Int).Sub(p, big.NewInt(1))
		assert.Equal(t, below.String(), textOf(arraystring.FormatUint128(bigUint128(below))), "10^%d-1", k)
		p.Mul(p, ten)
	}
}

func TestConcurrentFormatting(t *testing.T) {
	t.Parallel()
	var g errgroup.Group
	for w := range 8 {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(uint64(w), 1))
			for range sweep / 8 {
				v := int64(r.Uint64())
				s := arraystring.FormatInt64(v)
				if got, want := s.String(), strconv.FormatInt(v, 10); got != want {
					return fmt.Errorf("worker %d: got %q, want %q", w, got, want)
				}
				f := math.Float64frombits(r.Uint64())
				a := arraystring.Format(f)
				if got, want := a.String(), strconv.FormatFloat(f, 'g', -1, 64); got != want {
					return fmt.Errorf("worker %d: got %q, want %q", w, got, want)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// --- big.Int conversions for the 128-bit checks ---

func uint128Big(v arraystring.Uint128) *big.Int {
	hi := new(big.Int).SetUint64(v.Hi)
	return hi.Lsh(hi, 64).Or(hi, new(big.Int).SetUint64(v.Lo))
}

func int128Big(v arraystring.Int128) *big.Int {
	hi := big.NewInt(v.Hi)
	return hi.Lsh(hi, 64).Add(hi, new(big.Int).SetUint64(v.Lo))
}

func bigUint128(n *big.Int) arraystring.Uint128 {
	mask := new(big.Int).SetUint64(math.MaxUint64)
	lo := new(big.Int).And(n, mask).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	return arraystring.Uint128{Hi: hi, Lo: lo}
}
