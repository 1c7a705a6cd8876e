package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestVariation(t *testing.T) {
	assert.Equal(t, 0.0, Variation(500, 0), "zero reference is defined as 0, not an error")
	assert.Equal(t, 0.0, Variation(0, 0))
	assert.InDelta(t, 66.666, Variation(5000, 3000), 0.01)
	assert.InDelta(t, -50.0, Variation(1000, 2000), 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, day(2025, time.March, 10))
	assert.Equal(t, Summary{}, s)
	assert.Nil(t, MostPopular(nil))
}

func TestSummarizeTodayVsYesterday(t *testing.T) {
	now := day(2025, time.March, 10)
	records := []Record{
		{Date: day(2025, time.March, 10), Price: 5000, Client: "Carlos"},
		{Date: day(2025, time.March, 9), Price: 3000, Client: "Carlos"},
	}
	s := Summarize(records, now)
	assert.Equal(t, int64(5000), s.RevenueTodayCents)
	assert.Equal(t, 1, s.CountToday)
	assert.InDelta(t, 66.666, s.RevenueTodayVariation, 0.01)
}

func TestSummarizeMonthRollover(t *testing.T) {
	// January 1st: yesterday and the previous month are both in the prior year.
	now := day(2025, time.January, 1)
	records := []Record{
		{Date: day(2025, time.January, 1), Price: 4000, Client: "Ana"},
		{Date: day(2024, time.December, 31), Price: 2000, Client: "Bia"},
		{Date: day(2024, time.December, 15), Price: 6000, Client: "Bia"},
	}
	s := Summarize(records, now)
	assert.Equal(t, int64(4000), s.RevenueTodayCents)
	assert.InDelta(t, 100.0, s.RevenueTodayVariation, 0.001) // 4000 vs 2000
	assert.Equal(t, int64(4000), s.RevenueMonthCents)
	assert.InDelta(t, -50.0, s.RevenueMonthVariation, 0.001) // 4000 vs 8000
	assert.Equal(t, 1, s.CountMonth)
	// one unique client this month vs one last month
	assert.InDelta(t, 0.0, s.ClientsVariation, 0.001)
}

func TestSumIsOrderIndependent(t *testing.T) {
	now := day(2025, time.June, 20)
	records := []Record{
		{Date: now, Price: 100},
		{Date: now, Price: 2500},
		{Date: now, Price: 999},
		{Date: day(2025, time.June, 19), Price: 777},
	}
	want := Summarize(records, now)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]Record(nil), records...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Summarize(shuffled, now))
	}
}

func TestUniqueClients(t *testing.T) {
	now := day(2025, time.June, 20)

	// all identifiers missing -> count is 0, not an error
	s := Summarize([]Record{{Date: now, Price: 1}, {Date: now, Price: 2}}, now)
	assert.Equal(t, 0, s.ClientsToday)
	assert.Equal(t, 2, s.CountToday)

	// duplicates collapse; unique count never exceeds record count
	s = Summarize([]Record{
		{Date: now, Client: "Rui"},
		{Date: now, Client: "Rui"},
		{Date: now, Client: "Leo"},
	}, now)
	assert.Equal(t, 2, s.ClientsToday)

	// all distinct -> equality with record count
	s = Summarize([]Record{
		{Date: now, Client: "Rui"},
		{Date: now, Client: "Leo"},
	}, now)
	assert.Equal(t, 2, s.ClientsToday)
}

func TestMostPopular(t *testing.T) {
	p := MostPopular([]Record{
		{Type: "social"},
		{Type: "social"},
		{Type: "barba"},
	})
	require.NotNil(t, p)
	assert.Equal(t, "social", p.Name)
	assert.Equal(t, 66.7, p.Percentage)
}

func TestMostPopularSingleType(t *testing.T) {
	p := MostPopular([]Record{
		{Type: "degrade"},
		{Type: "degrade"},
		{Type: "degrade"},
	})
	require.NotNil(t, p)
	assert.Equal(t, "degrade", p.Name)
	assert.Equal(t, 100.0, p.Percentage)
}

func TestMostPopularTieGoesToFirstSeen(t *testing.T) {
	p := MostPopular([]Record{
		{Type: "barba"},
		{Type: "social"},
		{Type: "barba"},
		{Type: "social"},
	})
	require.NotNil(t, p)
	assert.Equal(t, "barba", p.Name)
	assert.Equal(t, 50.0, p.Percentage)
}

func TestMostPopularSkipsEmptyTypes(t *testing.T) {
	// empty types are ignored for ranking but still count toward the total
	p := MostPopular([]Record{
		{Type: ""},
		{Type: ""},
		{Type: "completo"},
		{Type: ""},
	})
	require.NotNil(t, p)
	assert.Equal(t, "completo", p.Name)
	assert.Equal(t, 25.0, p.Percentage)

	assert.Nil(t, MostPopular([]Record{{Type: ""}, {Type: ""}}))
}
