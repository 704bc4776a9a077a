// Package dict loads word/definition pairs from WordNet
// lexicographer data files, one file per grammatical category.
package dict

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the grammatical class of a dictionary file. It doubles
// as the file suffix: entries for CategoryNoun live in "data.noun".
type Category string

const (
	CategoryNoun Category = "noun"
	CategoryVerb Category = "verb"
	CategoryAdj  Category = "adj"
	CategoryAdv  Category = "adv"
)

var longNames = map[Category]string{
	CategoryNoun: "noun",
	CategoryVerb: "verb",
	CategoryAdj:  "adjective",
	CategoryAdv:  "adverb",
}

var titleCaser = cases.Title(language.English)

// Categories returns all categories in menu order.
func Categories() []Category {
	return []Category{CategoryNoun, CategoryVerb, CategoryAdj, CategoryAdv}
}

// Title returns the category's display name, e.g. "Adjective".
func (c Category) Title() string {
	return titleCaser.String(longNames[c])
}

// Valid reports whether c is one of the four recognized categories.
func (c Category) Valid() bool {
	_, ok := longNames[c]
	return ok
}

// ParseCategory maps a user-supplied tag or long name onto a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "noun", "verb", "adj", "adv":
		return Category(s), nil
	case "adjective":
		return CategoryAdj, nil
	case "adverb":
		return CategoryAdv, nil
	}
	return "", fmt.Errorf("unknown category %q (want noun, verb, adj, or adv)", s)
}

// Entry is a single word with its definition.
type Entry struct {
	Word       string
	Definition string
}
