package listview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestFilterIsCaseInsensitiveAndStable(t *testing.T) {
	items := []item{
		{1, "José Pérez"}, {2, "Distribuidora Norte"}, {3, "JOSEFINA"}, {4, "Pérez Hnos"},
	}
	byName := func(it item) string { return it.Name }

	require.Equal(t, []string{"José Pérez", "Pérez Hnos"}, names(Filter(items, "PÉREZ", byName)))
	require.Equal(t, []string{"José Pérez"}, names(Filter(items, "josé", byName)))
	require.Equal(t, []string{"JOSEFINA"}, names(Filter(items, "josef", byName)))
	require.Equal(t, names(items), names(Filter(items, "", byName)))
	require.Empty(t, Filter(items, "zzz", byName))

	all := Filter(items, "", byName)
	all[0].Name = "changed"
	require.Equal(t, "José Pérez", items[0].Name, "filter must not alias its input")
}

func TestPaginate(t *testing.T) {
	items := []item{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"}}

	cases := []struct {
		name       string
		page, size int
		want       []string
	}{
		{"first page", 1, 2, []string{"a", "b"}},
		{"middle page", 2, 2, []string{"c", "d"}},
		{"short last page", 3, 2, []string{"e"}},
		{"past the end", 4, 2, []string{}},
		{"page zero", 0, 2, []string{}},
		{"whole list", 1, 10, []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, names(Paginate(items, tc.page, tc.size)))
		})
	}
}

func TestNewPagination(t *testing.T) {
	require.Equal(t, 0, NewPagination(1, 3, 0).TotalPages)
	require.Equal(t, 1, NewPagination(1, 3, 3).TotalPages)
	require.Equal(t, 2, NewPagination(1, 3, 4).TotalPages)
	require.Equal(t, 0, NewPagination(1, 0, 4).TotalPages)

	p := NewPagination(3, 5, 6)
	require.True(t, p.OutOfRange())
	require.True(t, p.HasPrev())
	require.False(t, p.HasNext())
	require.Equal(t, []int{1, 2}, p.Pages())
	require.False(t, NewPagination(1, 5, 0).OutOfRange())
}
