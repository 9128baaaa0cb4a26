package serviceImp

import (
	"fmt"
	"log"
	"time"

	"sprout/entities"
	catalogrepo "sprout/pkg/catalog/repository"
	planrepo "sprout/pkg/cropplan/repository"
	"sprout/pkg/cropplan/service"
	taskrepo "sprout/pkg/croptask/repository"
	seasonrepo "sprout/pkg/season/repository"
	settingsrepo "sprout/pkg/settings/repository"
	"sprout/pkg/timeline"
)

// PlanSvc is the regeneration coordinator: validate, purge, generate,
// persist, mark scheduled. Re-running it is the only supported way to
// update a plan's calendar.
type PlanSvc struct {
	plans    planrepo.CropPlanRepository
	tasks    taskrepo.CropTaskRepository
	seasons  seasonrepo.SeasonRepository
	settings settingsrepo.SettingsRepository
	catalog  catalogrepo.CatalogRepository
}

func NewPlanService(
	plans planrepo.CropPlanRepository,
	tasks taskrepo.CropTaskRepository,
	seasons seasonrepo.SeasonRepository,
	settings settingsrepo.SettingsRepository,
	catalog catalogrepo.CatalogRepository,
) *PlanSvc {
	return &PlanSvc{plans: plans, tasks: tasks, seasons: seasons, settings: settings, catalog: catalog}
}

func (s *PlanSvc) Regenerate(planID uint, uid string, now time.Time) (*service.RegenResult, error) {
	plan, err := s.plans.FindByID(planID, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: crop plan %d", service.ErrNotFound, planID)
	}
	season, err := s.seasons.FindByID(plan.SeasonID, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: season %d", service.ErrNotFound, plan.SeasonID)
	}
	if season.Year <= 0 {
		// season as stored may predate the year column; fall back to the
		// caller-supplied clock rather than reading one here
		season.Year = now.Year()
	}

	// Settings are only the frost-date fallback; absence is fine.
	settings, err := s.settings.Find(uid)
	if err != nil {
		settings = nil
	}

	anchor, err := timeline.ResolveAnchor(season, settings)
	if err != nil {
		// terminal: plan status stays untouched, nothing was purged yet
		return nil, err
	}

	variety, profile, names := s.loadLinks(plan)
	timing := timeline.ResolveTiming(variety, profile)

	// Purge unconditionally, then insert the fresh batch. Concurrent
	// regeneration of the same plan is last-writer-wins; callers
	// serialize per plan at the UI.
	if err := s.tasks.DeleteByPlan(plan.PlanID); err != nil {
		return nil, fmt.Errorf("purge tasks for plan %d: %w", plan.PlanID, err)
	}
	batch := timeline.Generate(plan, timing, names, anchor)
	if err := s.tasks.BulkInsert(batch); err != nil {
		return nil, fmt.Errorf("insert %d tasks for plan %d: %w", len(batch), plan.PlanID, err)
	}
	if err := s.plans.MarkScheduled(plan.PlanID, plan.QuantityPlanned); err != nil {
		return nil, fmt.Errorf("mark plan %d scheduled: %w", plan.PlanID, err)
	}

	log.Printf("[plan] regenerated plan %d: %d tasks, anchor %s", plan.PlanID, len(batch), anchor.Format("2006-01-02"))
	return &service.RegenResult{TasksCreated: len(batch), Tasks: batch}, nil
}

// loadLinks resolves the optional variety/profile/plant-type records.
// Missing links degrade to engine defaults; the plant type feeds titles
// only. When the plan has no profile link but its variety does, the
// variety's profile is followed.
func (s *PlanSvc) loadLinks(plan *entities.CropPlan) (*entities.Variety, *entities.PlantProfile, timeline.Names) {
	var (
		variety *entities.Variety
		profile *entities.PlantProfile
		names   timeline.Names
	)
	if plan.VarietyID != nil {
		if v, err := s.catalog.FindVariety(*plan.VarietyID); err == nil {
			variety = v
			names.Variety = v.Name
		}
	}
	profileID := plan.ProfileID
	if profileID == nil && variety != nil {
		profileID = variety.ProfileID
	}
	if profileID != nil {
		if p, err := s.catalog.FindProfile(*profileID); err == nil {
			profile = p
		}
	}
	if plan.PlantTypeID != nil {
		if pt, err := s.catalog.FindPlantType(*plan.PlantTypeID); err == nil {
			names.PlantType = pt.Name
		}
	}
	return variety, profile, names
}
