package domain

import (
	"fmt"

	"github.com/ougirez/riskmap/internal/pkg/constants"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter is one value of the map's single filter control. Category and risk
// level values share one flat set.
type Filter string

const FilterAll Filter = "all"

type FilterOption struct {
	Value Filter `json:"value"`
	Label string `json:"label"`
}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidFilter, s)
	}
	return f, nil
}

func (f Filter) Valid() bool {
	return f == FilterAll || Category(f).Valid() || RiskLevel(f).Valid()
}

func (f Filter) Matches(site InfrastructureSite) bool {
	return f == FilterAll || string(site.Category) == string(f) || string(site.RiskLevel) == string(f)
}

// FilterSites keeps the table order.
func FilterSites(sites []InfrastructureSite, f Filter) []InfrastructureSite {
	out := make([]InfrastructureSite, 0, len(sites))
	for _, s := range sites {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func FilterOptions() []FilterOption {
	opts := []FilterOption{{Value: FilterAll, Label: "All"}}
	for _, c := range Categories {
		opts = append(opts, FilterOption{Value: Filter(c), Label: c.Label() + "s"})
	}
	for _, r := range RiskLevels {
		opts = append(opts, FilterOption{Value: Filter(r), Label: cases.Title(language.English).String(string(r)) + " Risk"})
	}
	return opts
}
