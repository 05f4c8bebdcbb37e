package models

import (
	"time"

	"github.com/google/uuid"
)

// Seniority is the closed set of career levels a position title can map to.
type Seniority string

const (
	SeniorityCLevel    Seniority = "C-Level / Founder"
	SeniorityVP        Seniority = "VP"
	SeniorityDirector  Seniority = "Director"
	SeniorityHeadOf    Seniority = "Head of"
	SeniorityManager   Seniority = "Manager / Lead"
	SenioritySeniorIC  Seniority = "Senior IC"
	SeniorityIC        Seniority = "IC / Specialist"
	SeniorityAssociate Seniority = "Junior / Associate"
)

// SeniorityOrder is the display order used by distributions and dropdowns,
// most senior first.
var SeniorityOrder = []Seniority{
	SeniorityCLevel,
	SeniorityVP,
	SeniorityDirector,
	SeniorityHeadOf,
	SeniorityManager,
	SenioritySeniorIC,
	SeniorityIC,
	SeniorityAssociate,
}

// PostType is the closed set of content shapes a share can classify into.
type PostType string

const (
	PostRepost    PostType = "Repost"
	PostMedia     PostType = "Media"
	PostLinkShare PostType = "Link Share"
	PostLongText  PostType = "Long Text"
	PostShortText PostType = "Short Text"
)

var PostTypeOrder = []PostType{
	PostRepost,
	PostMedia,
	PostLinkShare,
	PostLongText,
	PostShortText,
}

// Connection is one person in the owner's network. ConnectedOn is the zero
// time when the export row had no parseable date; such rows stay in
// company/seniority aggregations but are skipped by date-dependent ones.
type Connection struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"name"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	ConnectedOn time.Time `json:"connected_on"`
	ProfileURL  string    `json:"url"`
	Seniority   Seniority `json:"seniority"`
	Year        int       `json:"year"`
}

// HasDate reports whether the connected-on date parsed at load time.
func (c *Connection) HasDate() bool {
	return !c.ConnectedOn.IsZero()
}

// Post is a share authored by the owner, enriched at load time.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Date       time.Time `json:"date"`
	Content    string    `json:"content"`
	Preview    string    `json:"preview"`
	WordCount  int       `json:"word_count"`
	Type       PostType  `json:"type"`
	URN        string    `json:"urn"`
	Link       string    `json:"link"`
	HasMedia   bool      `json:"has_media"`
	HasLink    bool      `json:"has_link"`
	IsRepost   bool      `json:"is_repost"`
	Visibility string    `json:"visibility"`
	Comments   int       `json:"comments"`
}

// Comment is an owner-authored comment on any post.
type Comment struct {
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
	URN     string    `json:"urn"`
}

// Reaction is a reaction the owner gave (Like, Celebrate, Support, ...).
type Reaction struct {
	Date time.Time `json:"date"`
	Type string    `json:"type"`
}

// Profile carries the owner's name and headline from Profile.csv.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Headline  string `json:"headline"`
}

func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Message is one row of messages.csv.
type Message struct {
	ConversationID string    `json:"conversation_id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Date           time.Time `json:"date"`
	Content        string    `json:"content"`
}

// Conversation is a message thread rolled up for the dashboard.
type Conversation struct {
	Other         string    `json:"other"`
	MessageCount  int       `json:"msg_count"`
	LastDate      time.Time `json:"last_date"`
	LastFrom      string    `json:"last_from"`
	LastContent   string    `json:"last_content"`
	AwaitingReply bool      `json:"awaiting_your_reply"`
}

// Cluster is a company with at least the configured number of connections.
type Cluster struct {
	Company string   `json:"company"`
	Count   int      `json:"count"`
	Members []string `json:"members"`
}
