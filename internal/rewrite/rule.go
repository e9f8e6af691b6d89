package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Rule selects how a sibling's declared version becomes a constraint.
type Rule string

const (
	// RuleExact pins the exact version (==).
	RuleExact Rule = "=="
	// RuleTilde allows patch-level updates (~).
	RuleTilde Rule = "~"
	// RuleCaret allows minor and patch updates (^).
	RuleCaret Rule = "^"
	// RuleRange produces an explicit half-open range up to the next major.
	RuleRange Rule = ">=,<"
)

// ParseRule validates a rule string from configuration.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case RuleExact, RuleTilde, RuleCaret, RuleRange:
		return Rule(s), nil
	default:
		return "", fmt.Errorf("unknown version rewrite rule: %q (must be ==, ~, ^, or >=,<)", s)
	}
}

// Constraint applies the rule to a declared version.
func (r Rule) Constraint(version string) (string, error) {
	switch r {
	case RuleExact:
		return "==" + version, nil
	case RuleTilde:
		return "~" + version, nil
	case RuleCaret:
		return "^" + version, nil
	case RuleRange:
		next, err := nextMajor(version)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(">=%s,<%s", version, next), nil
	default:
		return "", fmt.Errorf("unknown version rewrite rule: %q", string(r))
	}
}

// nextMajor returns the smallest version excluded by a caret-style upper
// bound, e.g. 1.2.3 -> 2.0.0.
func nextMajor(version string) (string, error) {
	c := semver.Canonical("v" + version)
	if c == "" {
		return "", fmt.Errorf("invalid version %q", version)
	}
	major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(c), "v"))
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", version, err)
	}
	return fmt.Sprintf("%d.0.0", major+1), nil
}
