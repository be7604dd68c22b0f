package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ladder"
)

// parseKind parses a property kind flag: F, H, flat or house, in any case.
func parseKind(s string) (ladder.Kind, error) {
	switch strings.ToLower(s) {
	case "f", "flat":
		return ladder.Flat, nil
	case "h", "house":
		return ladder.House, nil
	}
	return 0, fmt.Errorf("%w: unknown property kind %q, want flat or house", ladder.ErrInvalidConfiguration, s)
}

func parseAmount(name, s string) (ladder.Amount, error) {
	a, err := ladder.ParseAmount(s)
	if err != nil {
		return ladder.Amount{}, fmt.Errorf("%w: -%s: %w", ladder.ErrInvalidConfiguration, name, err)
	}
	return a, nil
}

func parseRatio(name, s string) (ladder.Ratio, error) {
	r, err := ladder.ParseRatio(s)
	if err != nil {
		return ladder.Ratio{}, fmt.Errorf("%w: -%s: %w", ladder.ErrInvalidConfiguration, name, err)
	}
	return r, nil
}

// parseRatios parses a comma separated list like "5%,10%,0.2".
func parseRatios(name, s string) ([]ladder.Ratio, error) {
	var list []ladder.Ratio
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		r, err := parseRatio(name, f)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: -%s is empty", ladder.ErrInvalidConfiguration, name)
	}
	return list, nil
}

// parseList parses a comma separated list of words, dropping empty ones.
func parseList(s string) []string {
	var list []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			list = append(list, strings.ToUpper(f))
		}
	}
	return list
}

// query selects the value at path in the JSON encoding of v and returns it
// as JSON. Strings are returned unquoted.
func query(v any, path string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("%w: invalid query %q: %w", ladder.ErrInvalidConfiguration, path, err)
	}
	// jsonpath returns a list of 1 answer for filters and slices, keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	if s, ok := jval.(string); ok {
		return s, nil
	}
	out, err := json.Marshal(jval)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
