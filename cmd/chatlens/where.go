package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mlindner/chatlens/internal/filter"
)

// parseCriteria turns repeatable --where expressions into filter criteria.
// Accepted value shapes:
//
//	turns=5          exact numeric match
//	source=wc        exact string match
//	source=wc,sg     one-of list
//	turns=2..10      inclusive range
//	turns=2..        lower bound only
//	turns=..10       upper bound only
func parseCriteria(exprs []string) (filter.Criteria, error) {
	criteria := make(filter.Criteria, len(exprs))
	for _, expr := range exprs {
		key, value, ok := strings.Cut(expr, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (expected column=value)", expr)
		}

		crit, err := parseCriterion(value)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
		}
		criteria[key] = crit
	}
	return criteria, nil
}

func parseCriterion(value string) (filter.Criterion, error) {
	if lo, hi, isRange := strings.Cut(value, ".."); isRange {
		switch {
		case lo == "" && hi == "":
			return filter.Any(), nil
		case hi == "":
			f, err := strconv.ParseFloat(lo, 64)
			if err != nil {
				return filter.Criterion{}, err
			}
			return filter.AtLeast(f), nil
		case lo == "":
			f, err := strconv.ParseFloat(hi, 64)
			if err != nil {
				return filter.Criterion{}, err
			}
			return filter.AtMost(f), nil
		default:
			loF, err := strconv.ParseFloat(lo, 64)
			if err != nil {
				return filter.Criterion{}, err
			}
			hiF, err := strconv.ParseFloat(hi, 64)
			if err != nil {
				return filter.Criterion{}, err
			}
			return filter.Between(loF, hiF), nil
		}
	}

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		vals := make([]any, 0, len(parts))
		for _, p := range parts {
			vals = append(vals, strings.TrimSpace(p))
		}
		return filter.OneOf(vals...), nil
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return filter.Exact(f), nil
	}
	return filter.Exact(value), nil
}
