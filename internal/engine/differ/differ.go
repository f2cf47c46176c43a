// Package differ computes which keys every file is missing relative to its siblings.
package differ

import (
	"unique"

	"go.trai.ch/keydiff/internal/core/domain"
)

// Diff compares every file of contents against every other one.
// A key of a sibling is missing from file A when A does not have it and no ignore rule
// matching A suppresses it. Files and keys are visited in enumeration order, so the report
// is deterministic. A nil rule set applies no rules.
func Diff(contents *domain.ContentMap, rules *domain.IgnoreRuleSet) *domain.Report {
	report := domain.NewReport()
	paths := contents.Paths()

	for _, file := range paths {
		own := make(map[unique.Handle[string]]struct{})
		for _, h := range contents.Handles(file) {
			own[h] = struct{}{}
		}

		var missing []string
		listed := make(map[unique.Handle[string]]struct{})

		for _, sibling := range paths {
			if sibling == file {
				continue
			}
			for _, h := range contents.Handles(sibling) {
				if _, ok := own[h]; ok {
					continue
				}
				if _, ok := listed[h]; ok {
					continue
				}
				if rules.ShouldIgnore(file, h.Value()) {
					continue
				}
				listed[h] = struct{}{}
				missing = append(missing, h.Value())
			}
		}

		report.Add(file, missing)
	}

	return report
}
