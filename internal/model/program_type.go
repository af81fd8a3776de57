package model

import "fmt"

// ProgramType is a training direction (e.g. stretching, healthy back).
type ProgramType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProgramLabel resolves a program type id against a fetched list. When the
// reference data has not been loaded (or the id is dangling) the page must
// still render, so a "Программа #<id>" placeholder is returned instead.
func ProgramLabel(types []ProgramType, id int64) string {
	for _, pt := range types {
		if pt.ID == id {
			return pt.Name
		}
	}
	return fmt.Sprintf("Программа #%d", id)
}

// LocationLabel is the same fallback rule for locations: name plus address
// when loaded, "#<id>" otherwise.
func LocationLabel(locs []Location, id int64) string {
	for _, loc := range locs {
		if loc.ID == id {
			if loc.Address != "" {
				return loc.Name + " — " + loc.Address
			}
			return loc.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}
