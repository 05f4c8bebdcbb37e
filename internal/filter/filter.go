package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pavelaverin/linksight/internal/models"
)

// Kind names one predicate type the engine knows how to evaluate.
type Kind string

const (
	KindSeniority Kind = "seniority" // seniority ∈ Values
	KindCompany   Kind = "company"   // company contains Value, case-insensitive
	KindPosition  Kind = "position"  // position contains Value, case-insensitive
	KindYear      Kind = "year"      // connected/posted year == Value
	KindRecency   Kind = "recency"   // date within the last Value days
	KindSearch    Kind = "search"    // searchable text contains Value, case-insensitive
	KindPostType  Kind = "posttype"  // post type ∈ Values
)

// Predicate is one self-contained record test. Membership kinds (seniority,
// posttype) use Values; everything else uses Value.
type Predicate struct {
	Kind   Kind     `json:"kind"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// Set is an ordered collection of predicates combined with logical AND. An
// empty set matches everything.
type Set []Predicate

// ConnectionResult is a capped match list plus the uncapped match count, so
// callers can tell a truncated result from an exhaustive one.
type ConnectionResult struct {
	Records []models.Connection `json:"records"`
	Total   int                 `json:"total"`
}

func (r ConnectionResult) Truncated() bool { return r.Total > len(r.Records) }

type PostResult struct {
	Records []models.Post `json:"records"`
	Total   int           `json:"total"`
}

func (r PostResult) Truncated() bool { return r.Total > len(r.Records) }

// predErr names the offending predicate; a silently dropped filter would
// return misleadingly broad results.
func predErr(i int, p Predicate, format string, args ...any) error {
	return fmt.Errorf("predicate %d (%s): %s", i+1, p.Kind, fmt.Sprintf(format, args...))
}

// Connections applies the set over a connection sequence, preserving input
// order. limit <= 0 leaves the result uncapped. All predicates are validated
// before any record is touched.
func Connections(set Set, conns []models.Connection, limit int, now time.Time) (ConnectionResult, error) {
	matchers := make([]func(*models.Connection) bool, len(set))
	for i, p := range set {
		m, err := connectionMatcher(i, p, now)
		if err != nil {
			return ConnectionResult{}, err
		}
		matchers[i] = m
	}

	res := ConnectionResult{Records: []models.Connection{}}
	for i := range conns {
		if !matchAllConn(matchers, &conns[i]) {
			continue
		}
		res.Total++
		if limit <= 0 || len(res.Records) < limit {
			res.Records = append(res.Records, conns[i])
		}
	}
	return res, nil
}

// Posts is the post-entity counterpart of Connections.
func Posts(set Set, posts []models.Post, limit int, now time.Time) (PostResult, error) {
	matchers := make([]func(*models.Post) bool, len(set))
	for i, p := range set {
		m, err := postMatcher(i, p, now)
		if err != nil {
			return PostResult{}, err
		}
		matchers[i] = m
	}

	res := PostResult{Records: []models.Post{}}
	for i := range posts {
		if !matchAllPost(matchers, &posts[i]) {
			continue
		}
		res.Total++
		if limit <= 0 || len(res.Records) < limit {
			res.Records = append(res.Records, posts[i])
		}
	}
	return res, nil
}

func matchAllConn(ms []func(*models.Connection) bool, c *models.Connection) bool {
	for _, m := range ms {
		if !m(c) {
			return false
		}
	}
	return true
}

func matchAllPost(ms []func(*models.Post) bool, p *models.Post) bool {
	for _, m := range ms {
		if !m(p) {
			return false
		}
	}
	return true
}

func connectionMatcher(i int, p Predicate, now time.Time) (func(*models.Connection) bool, error) {
	switch p.Kind {
	case KindSeniority:
		want, err := seniorityMembership(i, p)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool { return want[c.Seniority] }, nil

	case KindCompany:
		needle, err := nonEmptyValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool {
			return strings.Contains(strings.ToLower(c.Company), needle)
		}, nil

	case KindPosition:
		needle, err := nonEmptyValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool {
			return strings.Contains(strings.ToLower(c.Position), needle)
		}, nil

	case KindYear:
		year, err := yearValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool { return c.HasDate() && c.Year == year }, nil

	case KindRecency:
		cutoff, err := recencyCutoff(i, p, now)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool { return c.HasDate() && !c.ConnectedOn.Before(cutoff) }, nil

	case KindSearch:
		needle, err := nonEmptyValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(c *models.Connection) bool {
			return strings.Contains(strings.ToLower(c.FullName), needle) ||
				strings.Contains(strings.ToLower(c.Company), needle) ||
				strings.Contains(strings.ToLower(c.Position), needle)
		}, nil

	case KindPostType:
		return nil, predErr(i, p, "not applicable to connections")

	default:
		return nil, predErr(i, p, "unrecognized predicate kind")
	}
}

func postMatcher(i int, p Predicate, now time.Time) (func(*models.Post) bool, error) {
	switch p.Kind {
	case KindPostType:
		want, err := postTypeMembership(i, p)
		if err != nil {
			return nil, err
		}
		return func(post *models.Post) bool { return want[post.Type] }, nil

	case KindYear:
		year, err := yearValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(post *models.Post) bool { return post.Date.Year() == year }, nil

	case KindRecency:
		cutoff, err := recencyCutoff(i, p, now)
		if err != nil {
			return nil, err
		}
		return func(post *models.Post) bool { return !post.Date.Before(cutoff) }, nil

	case KindSearch:
		needle, err := nonEmptyValue(i, p)
		if err != nil {
			return nil, err
		}
		return func(post *models.Post) bool {
			return strings.Contains(strings.ToLower(post.Content), needle)
		}, nil

	case KindSeniority, KindCompany, KindPosition:
		return nil, predErr(i, p, "not applicable to posts")

	default:
		return nil, predErr(i, p, "unrecognized predicate kind")
	}
}

func nonEmptyValue(i int, p Predicate) (string, error) {
	v := strings.TrimSpace(p.Value)
	if v == "" {
		return "", predErr(i, p, "requires a non-empty value")
	}
	return strings.ToLower(v), nil
}

func yearValue(i int, p Predicate) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(p.Value))
	if err != nil {
		return 0, predErr(i, p, "year %q is not numeric", p.Value)
	}
	return year, nil
}

func recencyCutoff(i int, p Predicate, now time.Time) (time.Time, error) {
	days, err := strconv.Atoi(strings.TrimSpace(p.Value))
	if err != nil || days <= 0 {
		return time.Time{}, predErr(i, p, "window %q is not a positive day count", p.Value)
	}
	return now.AddDate(0, 0, -days), nil
}

func seniorityMembership(i int, p Predicate) (map[models.Seniority]bool, error) {
	if len(p.Values) == 0 {
		return nil, predErr(i, p, "requires at least one seniority level")
	}
	valid := make(map[models.Seniority]bool, len(models.SeniorityOrder))
	for _, s := range models.SeniorityOrder {
		valid[s] = true
	}
	want := make(map[models.Seniority]bool, len(p.Values))
	for _, v := range p.Values {
		s := models.Seniority(v)
		if !valid[s] {
			return nil, predErr(i, p, "unknown seniority level %q", v)
		}
		want[s] = true
	}
	return want, nil
}

func postTypeMembership(i int, p Predicate) (map[models.PostType]bool, error) {
	if len(p.Values) == 0 {
		return nil, predErr(i, p, "requires at least one post type")
	}
	valid := make(map[models.PostType]bool, len(models.PostTypeOrder))
	for _, t := range models.PostTypeOrder {
		valid[t] = true
	}
	want := make(map[models.PostType]bool, len(p.Values))
	for _, v := range p.Values {
		t := models.PostType(v)
		if !valid[t] {
			return nil, predErr(i, p, "unknown post type %q", v)
		}
		want[t] = true
	}
	return want, nil
}
