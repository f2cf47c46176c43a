package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/keydiff/internal/core/domain"
)

func TestReport_AddAndLookup(t *testing.T) {
	r := domain.NewReport()
	assert.False(t, r.HasDrift())

	r.Add("b.json", []string{"x"})
	r.Add("a.json", []string{"y", "z"})
	r.Add("c.json", nil)

	assert.True(t, r.HasDrift())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []domain.ReportEntry{
		{Path: "b.json", MissingKeys: []string{"x"}},
		{Path: "a.json", MissingKeys: []string{"y", "z"}},
	}, r.Entries())

	keys, ok := r.Missing("a.json")
	assert.True(t, ok)
	assert.Equal(t, []string{"y", "z"}, keys)

	_, ok = r.Missing("c.json")
	assert.False(t, ok)
}

func TestReport_Fingerprint(t *testing.T) {
	build := func(entries ...domain.ReportEntry) *domain.Report {
		r := domain.NewReport()
		for _, e := range entries {
			r.Add(e.Path, e.MissingKeys)
		}
		return r
	}

	a := build(domain.ReportEntry{Path: "a.json", MissingKeys: []string{"y"}})
	b := build(domain.ReportEntry{Path: "a.json", MissingKeys: []string{"y"}})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)

	reordered := build(
		domain.ReportEntry{Path: "a.json", MissingKeys: []string{"y", "z"}},
	)
	other := build(
		domain.ReportEntry{Path: "a.json", MissingKeys: []string{"z", "y"}},
	)
	assert.NotEqual(t, reordered.Fingerprint(), other.Fingerprint())

	// Boundaries between path and keys are part of the digest.
	joined := build(domain.ReportEntry{Path: "ab", MissingKeys: []string{"c"}})
	split := build(domain.ReportEntry{Path: "a", MissingKeys: []string{"bc"}})
	assert.NotEqual(t, joined.Fingerprint(), split.Fingerprint())

	assert.Equal(t, domain.NewReport().Fingerprint(), domain.NewReport().Fingerprint())
}
