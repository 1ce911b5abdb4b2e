package catalog

import "fmt"

// ErrUnknownBlueprint indicates a blueprint ID absent from the catalog
type ErrUnknownBlueprint struct {
	BlueprintID string
}

func (e *ErrUnknownBlueprint) Error() string {
	return fmt.Sprintf("unknown blueprint: %s", e.BlueprintID)
}

// ErrDuplicateBlueprint indicates two catalog entries share an ID
type ErrDuplicateBlueprint struct {
	BlueprintID string
}

func (e *ErrDuplicateBlueprint) Error() string {
	return fmt.Sprintf("duplicate blueprint id: %s", e.BlueprintID)
}
