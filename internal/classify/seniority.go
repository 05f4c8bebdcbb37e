package classify

import (
	"strings"

	"github.com/pavelaverin/linksight/internal/models"
)

// seniorityRule maps a set of title keywords to one seniority level.
type seniorityRule struct {
	keywords []string
	level    models.Seniority
}

// seniorityRules is evaluated top to bottom; the first rule with a matching
// keyword wins, so the order is part of the observable behavior. Director is
// checked before C-Level on purpose: "cto" is a substring of "director".
var seniorityRules = []seniorityRule{
	{[]string{"director"}, models.SeniorityDirector},
	{[]string{"ceo", "cto", "cfo", "coo", "cro", "chief", "founder", "co-founder", "owner", "partner"}, models.SeniorityCLevel},
	{[]string{"vp", "vice president"}, models.SeniorityVP},
	{[]string{"head of", "head "}, models.SeniorityHeadOf},
	{[]string{"manager", "lead", "team lead"}, models.SeniorityManager},
	{[]string{"senior", "sr.", "sr "}, models.SenioritySeniorIC},
	{[]string{"junior", "jr.", "intern", "trainee", "associate"}, models.SeniorityAssociate},
}

// Seniority classifies a position title into a seniority level. It is total:
// empty or unmatched titles fall back to IC / Specialist.
func Seniority(position string) models.Seniority {
	pos := strings.ToLower(position)
	for _, rule := range seniorityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(pos, kw) {
				return rule.level
			}
		}
	}
	return models.SeniorityIC
}
