package dto

import "github.com/workforce-hub/utils"

// Draft is a create payload that can build a record for its owner
type Draft[T any] interface {
	ToModel(userID string) (T, error)
}

// Patch is an update payload; only fields the caller sent appear in Changes
type Patch interface {
	Changes() (utils.Changes, error)
}
