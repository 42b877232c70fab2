package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		level Level
		want  GameParams
	}{
		{Easy, GameParams{Width: 9, Height: 9, MineCount: 10}},
		{Medium, GameParams{Width: 16, Height: 16, MineCount: 40}},
		{Hard, GameParams{Width: 30, Height: 16, MineCount: 99}},
	}
	for _, test := range tests {
		t.Run(test.level.String(), func(t *testing.T) {
			p, ok := Preset(test.level)
			require.True(t, ok)
			assert.Equal(t, test.want, p)
			assert.NoError(t, p.Validate())

			// preset levels ignore custom values
			opts := Options{Level: test.level, Width: 30, Height: 24, MineCount: 500}
			assert.Equal(t, test.want, opts.Resolve())
		})
	}
	_, ok := Preset(Custom)
	assert.False(t, ok)
}

func TestMineRange(t *testing.T) {
	assert.Equal(t, Range{Min: 10, Max: 67, Default: 10}, MineRange(81))
	assert.Equal(t, Range{Min: 10, Max: 232, Default: 40}, MineRange(256))
	assert.Equal(t, Range{Min: 10, Max: 668, Default: 190}, MineRange(720))
}

func TestResolveCustom(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want GameParams
	}{
		{
			name: "defaults",
			opts: Options{Level: Custom},
			want: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name: "in range",
			opts: Options{Level: Custom, Width: 16, Height: 16, MineCount: 50},
			want: GameParams{Width: 16, Height: 16, MineCount: 50},
		},
		{
			name: "default mines",
			opts: Options{Level: Custom, Width: 16, Height: 16},
			want: GameParams{Width: 16, Height: 16, MineCount: 40},
		},
		{
			name: "too small",
			opts: Options{Level: Custom, Width: 2, Height: -4, MineCount: 1},
			want: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name: "too large",
			opts: Options{Level: Custom, Width: 100, Height: 100, MineCount: 10000},
			want: GameParams{Width: 30, Height: 24, MineCount: 668},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := test.opts.Resolve()
			assert.Equal(t, test.want, p)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestResolveAlwaysValid(t *testing.T) {
	for w := WidthRange.Min; w <= WidthRange.Max; w++ {
		for h := HeightRange.Min; h <= HeightRange.Max; h++ {
			r := MineRange(w * h)
			for _, m := range []int{r.Min, r.Default, r.Max} {
				p := Options{Level: Custom, Width: w, Height: h, MineCount: m}.Resolve()
				require.NoError(t, p.Validate(), p.String())
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		err  error
	}{
		{"", Easy, nil},
		{"easy", Easy, nil},
		{"Medium", Medium, nil},
		{"HARD", Hard, nil},
		{"custom", Custom, nil},
		{"expert", 0, ErrUnknownLevel},
	}
	for _, test := range tests {
		l, err := ParseLevel(test.in)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, test.in)
			continue
		}
		assert.NoError(t, err, test.in)
		assert.Equal(t, test.want, l, test.in)
	}

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("hard")))
	assert.Equal(t, Hard, l)
	text, err := Custom.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "custom", string(text))
	assert.Equal(t, "unknown", Level(9).String())
}

func TestParseGameParams(t *testing.T) {
	p, err := ParseGameParams("30:16:99")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Width: 30, Height: 16, MineCount: 99}, *p)
	assert.Equal(t, "30:16:99", p.String())

	for _, s := range []string{"", "9:9", "a:b:c", "9x9x10"} {
		_, err := ParseGameParams(s)
		assert.ErrorIs(t, err, ErrInvalidParams, s)
	}
}

func TestPointInBounds(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(15, 29))
	assert.False(t, p.PointInBounds(29, 15))
	assert.False(t, p.PointInBounds(-1, 0))
	assert.False(t, p.PointInBounds(16, 0))
}
