// Package rules provides the ordered regular-expression rewrites that strip
// WordPress, CDN and Microsoft Office export artifacts from page content.
package rules

import (
	"regexp"
	"strings"

	"github.com/fwojciec/wprefactor"
)

// maxPasses bounds how often a single rule is reapplied while it keeps
// changing the text (nested wrappers unwrap one level per pass).
const maxPasses = 16

// Rule is a single named substitution. Replace uses regexp.Expand syntax.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Apply rewrites s until the rule stops matching anything new, so applying
// a rule to its own output is a no-op.
func (r Rule) Apply(s string) string {
	for range maxPasses {
		next := r.Pattern.ReplaceAllString(s, r.Replace)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// Ensure RuleSet implements wprefactor.Cleaner at compile time.
var _ wprefactor.Cleaner = (*RuleSet)(nil)

// RuleSet applies rules in order.
type RuleSet struct {
	name  string
	rules []Rule
}

// NewRuleSet creates a RuleSet.
func NewRuleSet(name string, rules ...Rule) *RuleSet {
	return &RuleSet{name: name, rules: rules}
}

// Name returns the set's identifier.
func (s *RuleSet) Name() string {
	return s.name
}

// Rules returns the rules in application order.
func (s *RuleSet) Rules() []Rule {
	return s.rules
}

// Clean applies every rule in order.
func (s *RuleSet) Clean(html string) string {
	for _, r := range s.rules {
		html = r.Apply(html)
	}
	return html
}

// Concat joins sets into one, keeping order.
func Concat(sets ...*RuleSet) *RuleSet {
	names := make([]string, 0, len(sets))
	var rules []Rule
	for _, s := range sets {
		names = append(names, s.name)
		rules = append(rules, s.rules...)
	}
	return NewRuleSet(strings.Join(names, "+"), rules...)
}

func rule(name, pattern, replace string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replace: replace}
}
