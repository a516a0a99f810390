package substitution

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	compoundSeparatorConstant         = "-"
	compoundSourceSuffixConstant      = "agentd"
	compoundReplacementSuffixConstant = "service"
	qualifierSeparatorConstant        = " "
	qualifierWordConstant             = "Agent"
)

// Rule is one ordered substitution of Pattern by Replacement.
type Rule struct {
	Pattern     string
	Replacement string
}

// Set is an ordered sequence of rules, most specific first.
type Set []Rule

type casing func(string) string

type compoundForm struct {
	termCasing   casing
	suffixCasing casing
}

type qualifierForm struct {
	termCasing      casing
	qualifierCasing casing
}

var compoundForms = []compoundForm{
	{termCasing: unchanged, suffixCasing: unchanged},
	{termCasing: upper, suffixCasing: upper},
	{termCasing: capitalized, suffixCasing: capitalized},
	{termCasing: lower, suffixCasing: lower},
	{termCasing: capitalized, suffixCasing: unchanged},
}

var qualifierForms = []qualifierForm{
	{termCasing: unchanged, qualifierCasing: unchanged},
	{termCasing: upper, qualifierCasing: upper},
	{termCasing: capitalized, qualifierCasing: capitalized},
}

var bareForms = []casing{unchanged, upper, capitalized}

// Build derives the substitution set replacing oldTerm with newTerm.
func Build(oldTerm string, newTerm string) Set {
	rules := make(Set, 0, len(compoundForms)+len(qualifierForms)+len(bareForms))

	for _, form := range compoundForms {
		rules = append(rules, Rule{
			Pattern:     form.termCasing(oldTerm) + compoundSeparatorConstant + form.suffixCasing(compoundSourceSuffixConstant),
			Replacement: form.termCasing(newTerm) + compoundSeparatorConstant + form.suffixCasing(compoundReplacementSuffixConstant),
		})
	}

	for _, form := range qualifierForms {
		rules = append(rules, Rule{
			Pattern:     form.termCasing(oldTerm) + qualifierSeparatorConstant + form.qualifierCasing(qualifierWordConstant),
			Replacement: form.termCasing(newTerm),
		})
	}

	for _, termCasing := range bareForms {
		rules = append(rules, Rule{
			Pattern:     termCasing(oldTerm),
			Replacement: termCasing(newTerm),
		})
	}

	return rules
}

// Apply folds every rule over text in order and returns the result.
func (set Set) Apply(text string) string {
	updatedText := text
	for _, rule := range set {
		if len(rule.Pattern) == 0 {
			continue
		}
		updatedText = strings.ReplaceAll(updatedText, rule.Pattern, rule.Replacement)
	}
	return updatedText
}

// Changes applies the set and reports whether the text differs from the input.
func (set Set) Changes(text string) (string, bool) {
	updatedText := set.Apply(text)
	return updatedText, updatedText != text
}

func unchanged(term string) string {
	return term
}

func upper(term string) string {
	return cases.Upper(language.Und).String(term)
}

func lower(term string) string {
	return cases.Lower(language.Und).String(term)
}

// capitalized title-cases the first rune and lower-cases the rest.
func capitalized(term string) string {
	_, firstRuneSize := utf8.DecodeRuneInString(term)
	if firstRuneSize == 0 {
		return term
	}
	return cases.Title(language.Und).String(term[:firstRuneSize]) + lower(term[firstRuneSize:])
}
