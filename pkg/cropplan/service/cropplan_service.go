package service

import (
	"errors"
	"time"

	"sprout/entities"
)

// ErrNotFound: the crop plan or its season doesn't exist, or belongs to
// someone else.
var ErrNotFound = errors.New("not found")

type RegenResult struct {
	TasksCreated int
	Tasks        []entities.CropTask
}

type CropPlanService interface {
	// Regenerate replaces the plan's whole task set. now supplies the
	// fallback year when the season doesn't carry one.
	Regenerate(planID uint, uid string, now time.Time) (*RegenResult, error)
}
