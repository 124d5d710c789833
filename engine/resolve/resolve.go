// Package resolve maps typed item names to the IDs of items the player owns.
package resolve

import (
	"fmt"
	"strings"

	"github.com/nathoo/superadventure/types"
)

// Catalog is the item lookup resolve needs.
type Catalog interface {
	LookupItem(id string) (types.Item, bool)
}

// AmbiguityError indicates multiple owned items matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which %s? (%s)", e.Name, names)
}

// NotFoundError indicates no owned item matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("you don't have %q", e.Name)
}

// OwnedItem resolves name against the given owned entries. Only entries with
// a positive quantity and, when category is non-empty, a matching category
// are considered.
func OwnedItem(cat Catalog, owned []types.ItemCount, category types.ItemCategory, name string) (string, error) {
	nameLower := strings.ToLower(strings.TrimSpace(name))

	var matches []string
	for _, entry := range owned {
		if entry.Quantity <= 0 {
			continue
		}
		item, ok := cat.LookupItem(entry.ItemID)
		if !ok {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		if matchesName(item, nameLower) {
			matches = append(matches, item.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Name: name}
	case 1:
		return matches[0], nil
	default:
		// An exact name beats partial matches.
		for _, id := range matches {
			item, _ := cat.LookupItem(id)
			if strings.ToLower(item.Name) == nameLower || id == nameLower {
				return id, nil
			}
		}
		return "", &AmbiguityError{Name: name, Candidates: matches}
	}
}

// matchesName checks singular name, plural name and ID (case-insensitive).
// Supports exact match and word-based partial match.
func matchesName(item types.Item, nameLower string) bool {
	for _, n := range []string{item.Name, item.NamePlural} {
		n = strings.ToLower(n)
		if n == "" {
			continue
		}
		if n == nameLower {
			return true
		}
		// e.g. "sword" matches "rusty sword".
		for _, word := range strings.Fields(n) {
			if word == nameLower {
				return true
			}
		}
	}
	idLower := strings.ToLower(item.ID)
	if idLower == nameLower {
		return true
	}
	// Underscore normalization: "rusty sword" matches item ID "rusty_sword".
	return strings.ReplaceAll(nameLower, " ", "_") == idLower
}
