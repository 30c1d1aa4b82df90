package core

import (
	"fmt"
	"sort"
)

func sortIDs(ids []TerritoryID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// SortTerritoryIDs sorts ids in place and returns them.
func SortTerritoryIDs(ids []TerritoryID) []TerritoryID {
	sortIDs(ids)
	return ids
}

// ContainsTerritory reports whether id is present in ids.
func ContainsTerritory(ids []TerritoryID, id TerritoryID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func GetActionType(action Action) string {
	if action == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", action)
}
