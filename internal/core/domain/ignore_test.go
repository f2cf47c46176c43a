package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keydiff/internal/core/domain"
)

func TestNewIgnoreRuleSet_DropsInertRules(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: "", IgnoreKeys: []string{"a"}},
		{Pattern: `a\.json`, IgnoreKeys: nil},
		{Pattern: `a\.json`, IgnoreKeys: []string{}},
		{Pattern: `b\.json`, IgnoreKeys: []string{"x"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []domain.IgnoreRule{{Pattern: `b\.json`, IgnoreKeys: []string{"x"}}}, set.Rules())
}

func TestNewIgnoreRuleSet_InvalidPattern(t *testing.T) {
	_, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `(unclosed`, IgnoreKeys: []string{"x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRulePattern)
}

func TestIgnoreRuleSet_KeysFor(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `locales/`, IgnoreKeys: []string{"title", "footer"}},
		{Pattern: `fr\.json$`, IgnoreKeys: []string{"footer", "legal"}},
		{Pattern: `^de`, IgnoreKeys: []string{"never"}},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "union in rule order without duplicates",
			path: "app/locales/fr.json",
			want: []string{"title", "footer", "legal"},
		},
		{
			name: "search matches inside the path",
			path: "app/locales/en.json",
			want: []string{"title", "footer"},
		},
		{
			name: "anchored pattern does not match mid path",
			path: "app/de.json",
			want: nil,
		},
		{
			name: "no rule matches",
			path: "other/en.json",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.KeysFor(tt.path)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIgnoreRuleSet_ShouldIgnore(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `a\.json`, IgnoreKeys: []string{"y"}},
	})
	require.NoError(t, err)

	assert.True(t, set.ShouldIgnore("cfg/a.json", "y"))
	assert.False(t, set.ShouldIgnore("cfg/a.json", "x"))
	assert.False(t, set.ShouldIgnore("cfg/b.json", "y"))
}

func TestIgnoreRuleSet_Memoizes(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `json`, IgnoreKeys: []string{"k"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, set.CachedPaths())
	set.ShouldIgnore("a.json", "k")
	set.ShouldIgnore("a.json", "other")
	set.KeysFor("a.json")
	assert.Equal(t, 1, set.CachedPaths())

	set.ShouldIgnore("b.json", "k")
	assert.Equal(t, 2, set.CachedPaths())
}

func TestIgnoreRuleSet_KeysForReturnsCopy(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `a`, IgnoreKeys: []string{"k"}},
	})
	require.NoError(t, err)

	keys := set.KeysFor("a")
	keys[0] = "mutated"
	assert.Equal(t, []string{"k"}, set.KeysFor("a"))
	assert.True(t, set.ShouldIgnore("a", "k"))
}

func TestIgnoreRuleSet_ConcurrentLookups(t *testing.T) {
	set, err := domain.NewIgnoreRuleSet([]domain.IgnoreRule{
		{Pattern: `\.json$`, IgnoreKeys: []string{"k"}},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, set.ShouldIgnore("a.json", "k"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, set.CachedPaths())
}

func TestIgnoreRuleSet_NilAndEmpty(t *testing.T) {
	var nilSet *domain.IgnoreRuleSet
	assert.False(t, nilSet.ShouldIgnore("a.json", "k"))
	assert.Nil(t, nilSet.KeysFor("a.json"))
	assert.Equal(t, 0, nilSet.Len())

	empty := domain.EmptyIgnoreRuleSet()
	assert.False(t, empty.ShouldIgnore("a.json", "k"))
	assert.Empty(t, empty.KeysFor("a.json"))
	assert.Empty(t, empty.Rules())
}
