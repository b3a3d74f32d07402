//go:build unit

package rivals_test

import (
	"testing"

	"sarmiento-f5/internal/domain/rivals"

	"github.com/stretchr/testify/assert"
)

func ids(ls []rivals.Listing) []int {
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Summary().ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	board := rivals.Samples()

	cases := []struct {
		name   string
		filter rivals.Filter
		want   []int
	}{
		{name: "zero filter keeps everything in order", filter: rivals.Filter{}, want: []int{1, 2, 3, 101, 102, 103}},
		{name: "kind all", filter: rivals.Filter{Kind: rivals.KindAll}, want: []int{1, 2, 3, 101, 102, 103}},
		{name: "teams only", filter: rivals.Filter{Kind: rivals.KindTeam}, want: []int{1, 2, 3}},
		{name: "players only", filter: rivals.Filter{Kind: rivals.KindPlayer}, want: []int{101, 102, 103}},
		{name: "query on name ignores case", filter: rivals.Filter{Query: "CRACKS"}, want: []int{1}},
		{name: "query on location", filter: rivals.Filter{Query: "zona sur"}, want: []int{3, 103}},
		{name: "level is exact", filter: rivals.Filter{Levels: []rivals.Level{rivals.LevelAdvanced}}, want: []int{2, 102}},
		{name: "time is exact", filter: rivals.Filter{Times: []rivals.TimeOfDay{rivals.TimeNight}}, want: []int{2, 101}},
		{name: "location is substring", filter: rivals.Filter{Locations: []string{"Norte"}}, want: []int{1, 102}},
		{name: "day is substring", filter: rivals.Filter{Days: []string{"Viernes"}}, want: []int{2, 101}},
		{name: "facet values are ORed", filter: rivals.Filter{Levels: []rivals.Level{rivals.LevelBeginner, rivals.LevelAdvanced}}, want: []int{2, 3, 102, 103}},
		{
			name: "facets are ANDed",
			filter: rivals.Filter{
				Kind:   rivals.KindTeam,
				Times:  []rivals.TimeOfDay{rivals.TimeAfternoon},
				Levels: []rivals.Level{rivals.LevelBeginner},
			},
			want: []int{3},
		},
		{name: "no match", filter: rivals.Filter{Query: "Boca"}, want: []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(tc.filter.Apply(board)))
		})
	}
}

func TestFilterIsSubsetOfInput(t *testing.T) {
	board := rivals.Samples()
	f := rivals.Filter{Query: "a", Times: []rivals.TimeOfDay{rivals.TimeAfternoon, rivals.TimeNight}}

	out := f.Apply(board)
	assert.LessOrEqual(t, len(out), len(board))
	for _, l := range out {
		assert.True(t, f.Matches(l))
		assert.Contains(t, board, l)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]rivals.Kind{"": rivals.KindAll, "all": rivals.KindAll, "team": rivals.KindTeam, "player": rivals.KindPlayer} {
		got, err := rivals.ParseKind(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := rivals.ParseKind("club")
	assert.ErrorIs(t, err, rivals.ErrUnknownKind)
}
