package mock

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pavelaverin/linksight/internal/loader"
	"github.com/pavelaverin/linksight/internal/models"
)

// Export builds a deterministic sample export for demo mode and tests. The
// seed is fixed so repeated runs produce identical stores.
func Export() *loader.Export {
	rng := rand.New(rand.NewSource(42))

	ex := &loader.Export{
		Profile: models.Profile{FirstName: "Sam", LastName: "Demo", Headline: "Building a demo network"},
	}
	ex.Connections = connections(rng, 2400)
	ex.Posts = posts(rng, 180)
	ex.Comments = comments(rng, 320)
	ex.Reactions = reactions(rng, 900)
	return ex
}

var companies = []string{
	"Google", "Meta", "Amazon", "Microsoft", "Apple", "Salesforce", "Stripe",
	"Shopify", "HubSpot", "Slack", "Notion", "Figma", "Datadog", "Snowflake",
	"Twilio", "Atlassian", "Adobe", "Oracle", "SAP", "ServiceNow",
	"Zoom", "Okta", "MongoDB", "Elastic", "Confluent", "dbt Labs",
	"Gong", "Outreach", "Clari", "Clay", "Apollo.io", "ZoomInfo",
}

var positions = [][]string{
	{"CEO", "CTO", "CRO", "Co-Founder", "Chief Revenue Officer", "Founder & CEO"},
	{"VP of Sales", "VP of Engineering", "VP of Marketing", "VP of Product"},
	{"Director of Sales", "Director of Engineering", "Sales Director"},
	{"Head of Growth", "Head of Product", "Head of Partnerships"},
	{"Engineering Manager", "Product Manager", "Team Lead", "GTM Lead"},
	{"Senior Engineer", "Senior Account Executive", "Senior Data Scientist"},
	{"Software Engineer", "Account Executive", "Data Analyst", "Solutions Consultant"},
	{"Associate PM", "Junior Developer", "Marketing Associate", "Intern"},
}

// positionWeights roughly matches a real network's pyramid.
var positionWeights = []int{12, 8, 12, 10, 18, 15, 20, 5}

var firstNames = []string{
	"Alex", "Jordan", "Sam", "Taylor", "Morgan", "Casey", "Riley", "Avery",
	"Quinn", "Blake", "Cameron", "Drew", "Harper", "Jamie", "Logan", "Parker",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Anderson", "Taylor", "Thomas", "Moore", "Lee", "Clark", "Young",
}

var reactionKinds = []string{"LIKE", "PRAISE", "EMPATHY", "INTEREST", "APPRECIATION", "ENTERTAINMENT"}

func randomDate(rng *rand.Rand, startYear, endYear int) time.Time {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 1, 20, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days)).Add(time.Duration(rng.Intn(24)) * time.Hour)
}

func weightedGroup(rng *rand.Rand) int {
	total := 0
	for _, w := range positionWeights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range positionWeights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(positionWeights) - 1
}

func connections(rng *rand.Rand, n int) []models.Connection {
	conns := make([]models.Connection, 0, n)
	for i := 0; i < n; i++ {
		group := weightedGroup(rng)
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		conns = append(conns, models.Connection{
			FirstName:   first,
			LastName:    last,
			FullName:    first + " " + last,
			Company:     companies[rng.Intn(len(companies))],
			Position:    positions[group][rng.Intn(len(positions[group]))],
			ConnectedOn: randomDate(rng, 2016, 2026),
			ProfileURL:  fmt.Sprintf("https://www.linkedin.com/in/%s-%s-%04d", strings.ToLower(first), strings.ToLower(last), rng.Intn(9000)+1000),
		})
	}
	return conns
}

var sampleWords = strings.Fields(
	"shipping product growth pipeline revenue learnings hiring roadmap beta " +
		"launch metrics onboarding retention feedback culture remote team scale")

func posts(rng *rand.Rand, n int) []models.Post {
	out := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		p := models.Post{
			Date: randomDate(rng, 2022, 2026),
			URN:  fmt.Sprintf("7%012d", rng.Intn(1_000_000_000)),
		}
		p.Link = "https://www.linkedin.com/feed/update/urn:li:share:" + p.URN
		switch rng.Intn(5) {
		case 0: // repost: bare share
		case 1:
			p.HasMedia = true
			p.Content = sentence(rng, 20+rng.Intn(40))
		case 2:
			p.HasLink = true
			p.Content = sentence(rng, 10+rng.Intn(30))
		case 3:
			p.Content = sentence(rng, 110+rng.Intn(200))
		default:
			p.Content = sentence(rng, 5+rng.Intn(80))
		}
		p.Visibility = "MEMBER_NETWORK"
		out = append(out, p)
	}
	return out
}

func sentence(rng *rand.Rand, words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = sampleWords[rng.Intn(len(sampleWords))]
	}
	return strings.Join(parts, " ")
}

func comments(rng *rand.Rand, n int) []models.Comment {
	out := make([]models.Comment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Comment{
			Date:    randomDate(rng, 2022, 2026),
			Message: sentence(rng, 3+rng.Intn(25)),
		})
	}
	return out
}

func reactions(rng *rand.Rand, n int) []models.Reaction {
	out := make([]models.Reaction, 0, n)
	for i := 0; i < n; i++ {
		kind := reactionKinds[0]
		if rng.Intn(10) > 5 {
			kind = reactionKinds[rng.Intn(len(reactionKinds))]
		}
		out = append(out, models.Reaction{
			Date: randomDate(rng, 2022, 2026),
			Type: kind,
		})
	}
	return out
}
