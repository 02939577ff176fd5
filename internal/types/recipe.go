package types

import (
	"errors"
	"fmt"
	"strings"
)

// DietType is the closed set of dietary preferences a recipe can be generated for.
type DietType string

const (
	Vegetarian DietType = "vegetarian"
	Vegan      DietType = "vegan"
)

// ErrInvalidDietType is returned when a value falls outside the DietType set.
var ErrInvalidDietType = errors.New("invalid diet type")

// DietTypes returns every supported diet type.
func DietTypes() []DietType {
	return []DietType{Vegetarian, Vegan}
}

// ParseDietType maps s onto a DietType, rejecting anything outside the set.
func ParseDietType(s string) (DietType, error) {
	switch DietType(s) {
	case Vegetarian:
		return Vegetarian, nil
	case Vegan:
		return Vegan, nil
	default:
		return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidDietType, s, dietTypeList())
	}
}

func (d DietType) String() string {
	return string(d)
}

func dietTypeList() string {
	names := make([]string, 0, len(DietTypes()))
	for _, d := range DietTypes() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
