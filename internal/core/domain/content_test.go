package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/keydiff/internal/core/domain"
)

func TestContentMap_PreservesInsertionOrder(t *testing.T) {
	c := domain.NewContentMap()
	c.Set("z.json", []string{"b", "a"})
	c.Set("a.json", []string{"c"})
	c.Set("m.json", nil)

	assert.Equal(t, []string{"z.json", "a.json", "m.json"}, c.Paths())
	assert.Equal(t, []string{"b", "a"}, c.Keys("z.json"))
	assert.Empty(t, c.Keys("m.json"))
	assert.Nil(t, c.Keys("unknown.json"))
	assert.Equal(t, 3, c.Len())
}

func TestContentMap_SetTwiceKeepsPosition(t *testing.T) {
	c := domain.NewContentMap()
	c.Set("a.json", []string{"x"})
	c.Set("b.json", []string{"y"})
	c.Set("a.json", []string{"z"})

	assert.Equal(t, []string{"a.json", "b.json"}, c.Paths())
	assert.Equal(t, []string{"z"}, c.Keys("a.json"))
}

func TestContentMap_InternsKeys(t *testing.T) {
	c := domain.NewContentMap()
	c.Set("a.json", []string{"shared"})
	c.Set("b.json", []string{"shared"})

	assert.Equal(t, c.Handles("a.json")[0], c.Handles("b.json")[0])
}
