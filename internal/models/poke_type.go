package models

import (
	"slices"
	"sort"
)

// pokeTypes is sorted once at init and never mutated afterwards.
var pokeTypes = func() []string {
	t := []string{
		"fire", "electric", "normal", "ghost",
		"psychic", "water", "bug", "dragon",
		"grass", "fighting", "ice", "flying",
		"poison", "ground", "rock", "steel",
	}
	sort.Strings(t)
	return t
}()

// PokeTypes returns the valid Pokemon types in sorted order.
// The returned slice is a copy and may be modified by the caller.
func PokeTypes() []string {
	return slices.Clone(pokeTypes)
}

// IsPokeType reports whether t is one of the valid Pokemon types.
func IsPokeType(t string) bool {
	_, found := slices.BinarySearch(pokeTypes, t)
	return found
}
