package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelaverin/linksight/internal/models"
)

var now = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func conn(name, company, position string, seniority models.Seniority, connected time.Time) models.Connection {
	c := models.Connection{
		FullName:    name,
		Company:     company,
		Position:    position,
		Seniority:   seniority,
		ConnectedOn: connected,
	}
	if !connected.IsZero() {
		c.Year = connected.Year()
	}
	return c
}

func sampleConnections() []models.Connection {
	return []models.Connection{
		conn("Ada One", "Acme Corp", "VP of Engineering", models.SeniorityVP, now.AddDate(0, -1, 0)),
		conn("Bob Two", "Acme Corp", "Software Engineer", models.SeniorityIC, now.AddDate(-1, 0, 0)),
		conn("Cem Three", "Globex", "VP of Sales", models.SeniorityVP, now.AddDate(-3, 0, 0)),
		conn("Dot Four", "Initech", "CTO", models.SeniorityCLevel, time.Time{}),
	}
}

func TestEmptySetMatchesEverything(t *testing.T) {
	conns := sampleConnections()
	res, err := Connections(nil, conns, 0, now)
	require.NoError(t, err)
	assert.Equal(t, len(conns), res.Total)
	assert.Len(t, res.Records, len(conns))
	assert.False(t, res.Truncated())
}

func TestAndSemantics(t *testing.T) {
	set := Set{
		{Kind: KindSeniority, Values: []string{"VP"}},
		{Kind: KindCompany, Value: "acme"},
	}
	res, err := Connections(set, sampleConnections(), 0, now)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Ada One", res.Records[0].FullName)

	// A third never-true predicate empties the result.
	set = append(set, Predicate{Kind: KindCompany, Value: "no-such-company"})
	res, err = Connections(set, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Records)
}

func TestPredicateOrderDoesNotChangeResult(t *testing.T) {
	a := Set{
		{Kind: KindCompany, Value: "acme"},
		{Kind: KindSeniority, Values: []string{"VP"}},
	}
	b := Set{
		{Kind: KindSeniority, Values: []string{"VP"}},
		{Kind: KindCompany, Value: "acme"},
	}
	resA, err := Connections(a, sampleConnections(), 0, now)
	require.NoError(t, err)
	resB, err := Connections(b, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, resA, resB)
}

func TestSubstringFiltersAreCaseInsensitive(t *testing.T) {
	res, err := Connections(Set{{Kind: KindPosition, Value: "ENGINEER"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestYearEquality(t *testing.T) {
	res, err := Connections(Set{{Kind: KindYear, Value: "2025"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Bob Two", res.Records[0].FullName)
}

func TestYearSkipsDatelessRecords(t *testing.T) {
	// The dateless CTO must never match a year filter, even year zero.
	res, err := Connections(Set{{Kind: KindYear, Value: "0"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestRecencyWindow(t *testing.T) {
	res, err := Connections(Set{{Kind: KindRecency, Value: "60"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Ada One", res.Records[0].FullName)
}

func TestSearchSpansNameCompanyPosition(t *testing.T) {
	res, err := Connections(Set{{Kind: KindSearch, Value: "globex"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = Connections(Set{{Kind: KindSearch, Value: "cto"}}, sampleConnections(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestTruncationReportsFullTotal(t *testing.T) {
	conns := make([]models.Connection, 600)
	for i := range conns {
		conns[i] = conn(fmt.Sprintf("Person %03d", i), "Acme", "Engineer", models.SeniorityIC, now.AddDate(0, 0, -i))
	}
	res, err := Connections(Set{{Kind: KindCompany, Value: "acme"}}, conns, 500, now)
	require.NoError(t, err)
	assert.Len(t, res.Records, 500)
	assert.Equal(t, 600, res.Total)
	assert.True(t, res.Truncated())
	// Stable: the cap keeps the head of the input order.
	assert.Equal(t, "Person 000", res.Records[0].FullName)
	assert.Equal(t, "Person 499", res.Records[499].FullName)
}

func TestInvalidPredicatesFailFast(t *testing.T) {
	cases := []struct {
		name string
		set  Set
		want string
	}{
		{"unknown kind", Set{{Kind: "sideways"}}, "unrecognized predicate kind"},
		{"non-numeric year", Set{{Kind: KindYear, Value: "twenty"}}, `year "twenty" is not numeric`},
		{"negative recency", Set{{Kind: KindRecency, Value: "-3"}}, "not a positive day count"},
		{"empty substring", Set{{Kind: KindCompany, Value: "  "}}, "requires a non-empty value"},
		{"unknown seniority", Set{{Kind: KindSeniority, Values: []string{"Boss"}}}, `unknown seniority level "Boss"`},
		{"empty membership", Set{{Kind: KindSeniority}}, "requires at least one"},
		{"posttype on connections", Set{{Kind: KindPostType, Values: []string{"Media"}}}, "not applicable to connections"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Connections(tc.set, sampleConnections(), 0, now)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, err.Error(), "predicate 1")
		})
	}
}

func TestPostFilters(t *testing.T) {
	posts := []models.Post{
		{Content: "launch day retrospective", Type: models.PostLongText, Date: now.AddDate(0, 0, -2)},
		{Content: "quick note", Type: models.PostShortText, Date: now.AddDate(-1, 0, 0)},
		{Content: "", Type: models.PostRepost, Date: now.AddDate(0, 0, -10)},
	}

	res, err := Posts(Set{{Kind: KindPostType, Values: []string{"Long Text", "Repost"}}}, posts, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	res, err = Posts(Set{{Kind: KindSearch, Value: "LAUNCH"}}, posts, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = Posts(Set{{Kind: KindRecency, Value: "30"}}, posts, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	_, err = Posts(Set{{Kind: KindSeniority, Values: []string{"VP"}}}, posts, 0, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not applicable to posts")

	_, err = Posts(Set{{Kind: KindPostType, Values: []string{"Meme"}}}, posts, 0, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown post type "Meme"`)
}

func TestEmptyInputIsNotAnError(t *testing.T) {
	res, err := Connections(Set{{Kind: KindCompany, Value: "acme"}}, nil, 0, now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Records)
	assert.Empty(t, res.Records)
}
