package playout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/nelhage/takrules/bitboard"
	"github.com/nelhage/takrules/rules"
	"github.com/nelhage/takrules/tak"
)

var (
	slides = tak.BuildSlideTable(bitboard.MaxSize)
	masks  = bitboard.NewMaskTable()
)

func TestPlay(t *testing.T) {
	for size := 3; size <= 6; size++ {
		p, err := tak.New(tak.Config{Size: size})
		require.NoError(t, err)
		c := masks.MustFor(size)
		r := rand.New(rand.NewSource(uint64(size)))

		out, err := Play(p, slides, c, r, 1000)
		require.NoError(t, err)
		assert.Zero(t, p.PlyCount(), "Play mutated the start position")
		if !out.Over {
			assert.Equal(t, 1000, out.Plies)
			continue
		}
		if out.Result.Reason == rules.RoadWin {
			assert.NotEqual(t, tak.NoColor, out.Result.Winner)
		}
	}
}

func TestPlayMaxPlies(t *testing.T) {
	p, err := tak.New(tak.Config{Size: 8})
	require.NoError(t, err)
	out, err := Play(p, slides, masks.MustFor(8), rand.New(rand.NewSource(1)), 4)
	require.NoError(t, err)
	assert.False(t, out.Over)
	assert.Equal(t, 4, out.Plies)
}

func TestRunDeterministic(t *testing.T) {
	o := Options{Games: 24, Threads: 1, Seed: 42, MaxPlies: 400}
	a, err := Run(context.Background(), tak.Config{Size: 4}, slides, masks, o)
	require.NoError(t, err)

	o.Threads = 6
	b, err := Run(context.Background(), tak.Config{Size: 4}, slides, masks, o)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, 24, a.Games)
	assert.Equal(t, a.Games,
		a.WhiteRoads+a.BlackRoads+a.WhiteFlats+a.BlackFlats+a.Draws+a.Unfinished)
}

func TestRunBadSize(t *testing.T) {
	_, err := Run(context.Background(), tak.Config{Size: 9}, slides, masks, Options{Games: 1})
	assert.ErrorIs(t, err, tak.ErrBadSize)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, tak.Config{Size: 3}, slides, masks, Options{Games: 4, MaxPlies: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
