package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_MenuOrder(t *testing.T) {
	assert.Equal(t, []Category{CategoryNoun, CategoryVerb, CategoryAdj, CategoryAdv}, Categories())
}

func TestCategory_Title(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryNoun, "Noun"},
		{CategoryVerb, "Verb"},
		{CategoryAdj, "Adjective"},
		{CategoryAdv, "Adverb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cat.Title())
	}
}

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"noun", "verb", "adj", "adv"} {
		cat, err := ParseCategory(s)
		require.NoError(t, err)
		assert.Equal(t, Category(s), cat)
		assert.True(t, cat.Valid())
	}

	cat, err := ParseCategory("adjective")
	require.NoError(t, err)
	assert.Equal(t, CategoryAdj, cat)

	cat, err = ParseCategory("adverb")
	require.NoError(t, err)
	assert.Equal(t, CategoryAdv, cat)

	_, err = ParseCategory("pronoun")
	require.Error(t, err)
	assert.False(t, Category("pronoun").Valid())
}
