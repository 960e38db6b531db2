package front

import (
	"strings"

	"github.com/jvarela86/Athlete-Injury-Tracker/internal/utils"
)

// matchAny reports whether term is a substring of at least one field,
// case insensitive. An empty field simply does not match, it is not an error.
func matchAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// The filter funcs keep server response order, they only drop rows.

func FilterAthletes(items []Athlete, term string) []Athlete {
	if term == "" {
		return items
	}
	return utils.Filter(items, func(a Athlete) bool {
		return matchAny(term, a.FirstName, a.LastName, a.Sport, a.TeamName)
	})
}

func FilterInjuries(items []Injury, term string) []Injury {
	if term == "" {
		return items
	}
	return utils.Filter(items, func(i Injury) bool {
		return matchAny(term, i.InjuryType, i.BodyPart, i.Description, i.AthleteName)
	})
}

func FilterTreatments(items []Treatment, term string) []Treatment {
	if term == "" {
		return items
	}
	return utils.Filter(items, func(t Treatment) bool {
		return matchAny(term, t.TreatmentType, t.Provider, t.Result, t.AthleteName, t.InjuryDescription)
	})
}
