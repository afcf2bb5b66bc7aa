package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParks() *Catalog[Park] {
	return New([]Park{
		{ID: 10, Name: "Yosemite", Description: "Granite cliffs and giant sequoias."},
		{ID: 1, Name: "Test Park", Description: "A park used in tests."},
		{ID: 7, Name: "Redwood", Description: "Tallest trees on Earth."},
	})
}

func testStates() *Catalog[State] {
	return New([]State{
		{ID: 1, State: "California", TotalParks: Uint32(9)},
		{ID: 2, State: "North Carolina"},
		{ID: 3, State: "South Dakota", TotalParks: Uint32(2)},
	})
}

func TestCatalogList(t *testing.T) {
	c := testParks()
	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, []uint32{10, 1, 7}, []uint32{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, 3, c.Len())
}

func TestCatalogGet(t *testing.T) {
	c := testParks()

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Test Park", p.Name)

	_, err = c.Get(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogGetDuplicateIDReturnsFirst(t *testing.T) {
	c := New([]State{{ID: 4, State: "Utah"}, {ID: 4, State: "Ohio"}})
	s, err := c.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Utah", s.State)
}

func TestCatalogSearchParksMatchesNameOrDescription(t *testing.T) {
	c := testParks()

	got := c.Search("yose")
	require.Len(t, got, 1)
	assert.Equal(t, uint32(10), got[0].ID)

	// description only
	got = c.Search("TREES")
	require.Len(t, got, 1)
	assert.Equal(t, uint32(7), got[0].ID)

	// "park" hits name of Test Park and nothing else
	got = c.Search("park")
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].ID)
}

func TestCatalogSearchStatesUsesStateName(t *testing.T) {
	c := testStates()

	got := c.Search("carolina")
	require.Len(t, got, 1)
	assert.Equal(t, "North Carolina", got[0].State)

	got = c.Search("north dakota")
	require.Len(t, got, 2)
	assert.Equal(t, uint32(2), got[0].ID)
	assert.Equal(t, uint32(3), got[1].ID)
}

func TestCatalogSearchNoMatchIsEmptyNotNil(t *testing.T) {
	got := testStates().Search("xyz123")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogSearchEmptyQueryReturnsAll(t *testing.T) {
	assert.Len(t, testParks().Search(""), 3)
}

func TestCatalogSearchCompleteness(t *testing.T) {
	c := testParks()
	for _, q := range []string{"a", "gran", "tall trees", "zzz", "park test"} {
		got := c.Search(q)
		hit := map[uint32]bool{}
		for _, p := range got {
			hit[p.ID] = true
		}
		for _, p := range c.List() {
			want := Matches(q, p.Name) || Matches(q, p.Description)
			assert.Equal(t, want, hit[p.ID], "query %q park %d", q, p.ID)
		}
	}
}

func TestNewNilRecords(t *testing.T) {
	c := New[Park](nil)
	assert.NotNil(t, c.List())
	assert.Empty(t, c.Search(""))
}
