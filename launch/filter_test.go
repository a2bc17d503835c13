package launch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func named(flight int, name string) Launch {
	return Launch{FlightNumber: flight, MissionName: &name}
}

func names(items []Launch) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.Name())
	}
	return out
}

func TestFilterKeepsMatchesInOrder(t *testing.T) {
	items := []Launch{named(1, "Falcon 1"), named(2, "Starlink-1"), named(3, "Falcon 9")}

	got := Filter(items, "Falcon")

	assert.Equal(t, []string{"Falcon 1", "Falcon 9"}, names(got))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	items := []Launch{named(1, "FalconSat"), named(2, "DemoSat"), named(3, "CRS-1")}

	assert.Equal(t, []string{"FalconSat", "DemoSat"}, names(Filter(items, "SAT")))
	assert.Equal(t, []string{"CRS-1"}, names(Filter(items, "crs")))
	assert.Empty(t, Filter(items, "starlink"))
}

func TestFilterUnicodeCase(t *testing.T) {
	items := []Launch{named(1, "ÉCLAIR"), named(2, "eclair")}

	assert.Equal(t, []string{"ÉCLAIR"}, names(Filter(items, "éclair")))
}

func TestFilterEmptyQueryReturnsEverything(t *testing.T) {
	items := []Launch{named(1, "A"), {FlightNumber: 2}, named(3, "C")}

	got := Filter(items, "")

	assert.Equal(t, items, got)
}

func TestFilterSkipsLaunchesWithoutName(t *testing.T) {
	items := []Launch{{FlightNumber: 1}, named(2, "Thaicom 6")}

	assert.NotPanics(t, func() {
		got := Filter(items, "thai")
		assert.Equal(t, []string{"Thaicom 6"}, names(got))
	})
}

// The filter result must be exactly the subset whose name contains the query.
func TestFilterMatchesDefinition(t *testing.T) {
	items := []Launch{
		named(1, "FalconSat"), named(2, "DemoSat"), named(3, "Trailblazer"),
		named(4, "RatSat"), named(5, "RazakSat"), named(6, "Falcon 9 Test Flight"),
		named(7, "COTS 1"), named(8, "COTS 2"), {FlightNumber: 9},
	}
	queries := []string{"", "sat", "SAT", "falcon", "cots", " ", "zz", "t f"}

	for _, q := range queries {
		got := Filter(items, q)

		var want []string
		for _, l := range items {
			if q == "" || (l.HasName() && strings.Contains(strings.ToLower(l.Name()), strings.ToLower(q))) {
				want = append(want, l.Name())
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, names(got), "query %q", q)
	}
}
