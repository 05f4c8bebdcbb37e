package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pavelaverin/linksight/internal/filter"
	"github.com/pavelaverin/linksight/internal/models"
)

// Params is the named-parameter form of a query, as submitted by the HTTP
// API, the CLI, or an external translation layer. Empty fields contribute no
// predicate.
type Params struct {
	Seniority []string `json:"seniority,omitempty"`
	Company   string   `json:"company,omitempty"`
	Position  string   `json:"position,omitempty"`
	Year      string   `json:"year,omitempty"`
	Days      string   `json:"days,omitempty"`
	Search    string   `json:"search,omitempty"`
	PostTypes []string `json:"types,omitempty"`
	Limit     int      `json:"limit,omitempty"`
	Sort      string   `json:"sort,omitempty"`
}

// Sort directives. The zero value keeps the store's reverse-chronological
// order.
const (
	SortOldest   = "oldest"
	SortName     = "name"     // connections only
	SortComments = "comments" // posts only, most-commented first
)

// FromValues reads Params out of URL query values. Multi-valued params accept
// both repetition and comma separation.
func FromValues(v url.Values) (Params, error) {
	p := Params{
		Seniority: splitMulti(v["seniority"]),
		Company:   v.Get("company"),
		Position:  v.Get("position"),
		Year:      v.Get("year"),
		Days:      v.Get("days"),
		Search:    v.Get("q"),
		PostTypes: splitMulti(v["type"]),
		Sort:      v.Get("sort"),
	}
	if raw := v.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return Params{}, fmt.Errorf("limit %q is not a non-negative integer", raw)
		}
		p.Limit = limit
	}
	return p, nil
}

func splitMulti(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// FilterSet assembles the ordered predicate set the params describe.
// Assembly order is fixed so identical params always yield an identical set.
func (p Params) FilterSet() filter.Set {
	var set filter.Set
	if len(p.Seniority) > 0 {
		set = append(set, filter.Predicate{Kind: filter.KindSeniority, Values: p.Seniority})
	}
	if p.Company != "" {
		set = append(set, filter.Predicate{Kind: filter.KindCompany, Value: p.Company})
	}
	if p.Position != "" {
		set = append(set, filter.Predicate{Kind: filter.KindPosition, Value: p.Position})
	}
	if p.Year != "" {
		set = append(set, filter.Predicate{Kind: filter.KindYear, Value: p.Year})
	}
	if p.Days != "" {
		set = append(set, filter.Predicate{Kind: filter.KindRecency, Value: p.Days})
	}
	if p.Search != "" {
		set = append(set, filter.Predicate{Kind: filter.KindSearch, Value: p.Search})
	}
	if len(p.PostTypes) > 0 {
		set = append(set, filter.Predicate{Kind: filter.KindPostType, Values: p.PostTypes})
	}
	return set
}

func (p Params) effectiveLimit(defaultLimit int) int {
	if p.Limit > 0 {
		return p.Limit
	}
	return defaultLimit
}

// Connections runs the query against a connection sequence. The cap is
// applied after filtering and sorting, and Total always reports the uncapped
// match count.
func Connections(conns []models.Connection, p Params, defaultLimit int, now time.Time) (filter.ConnectionResult, error) {
	res, err := filter.Connections(p.FilterSet(), conns, 0, now)
	if err != nil {
		return filter.ConnectionResult{}, err
	}

	switch p.Sort {
	case "", SortOldest:
		if p.Sort == SortOldest {
			reverse(res.Records)
		}
	case SortName:
		sort.SliceStable(res.Records, func(i, j int) bool {
			return res.Records[i].FullName < res.Records[j].FullName
		})
	default:
		return filter.ConnectionResult{}, fmt.Errorf("sort %q is not valid for connections", p.Sort)
	}

	if limit := p.effectiveLimit(defaultLimit); limit > 0 && len(res.Records) > limit {
		res.Records = res.Records[:limit]
	}
	return res, nil
}

// Posts runs the query against a post sequence.
func Posts(posts []models.Post, p Params, defaultLimit int, now time.Time) (filter.PostResult, error) {
	res, err := filter.Posts(p.FilterSet(), posts, 0, now)
	if err != nil {
		return filter.PostResult{}, err
	}

	switch p.Sort {
	case "", SortOldest:
		if p.Sort == SortOldest {
			reverse(res.Records)
		}
	case SortComments:
		sort.SliceStable(res.Records, func(i, j int) bool {
			return res.Records[i].Comments > res.Records[j].Comments
		})
	default:
		return filter.PostResult{}, fmt.Errorf("sort %q is not valid for posts", p.Sort)
	}

	if limit := p.effectiveLimit(defaultLimit); limit > 0 && len(res.Records) > limit {
		res.Records = res.Records[:limit]
	}
	return res, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
