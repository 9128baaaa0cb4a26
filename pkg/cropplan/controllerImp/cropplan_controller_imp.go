package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	planrepo "sprout/pkg/cropplan/repository"
	"sprout/pkg/cropplan/service"
	"sprout/pkg/timeline"
)

type PlanCtrl struct {
	svc   service.CropPlanService
	plans planrepo.CropPlanRepository
}

func NewPlanCtrl(svc service.CropPlanService, plans planrepo.CropPlanRepository) *PlanCtrl {
	return &PlanCtrl{svc: svc, plans: plans}
}

type createReq struct {
	SeasonID    uint   `json:"season_id"`
	GardenID    *uint  `json:"garden_id"`
	PlantTypeID *uint  `json:"plant_type_id"`
	ProfileID   *uint  `json:"profile_id"`
	VarietyID   *uint  `json:"variety_id"`
	Method      string `json:"method"`

	SeedOffsetDays       *int `json:"seed_offset_days"`
	TransplantOffsetDays *int `json:"transplant_offset_days"`
	SowOffsetDays        *int `json:"sow_offset_days"`
	DaysToMaturity       *int `json:"days_to_maturity"`
	HarvestWindowDays    *int `json:"harvest_window_days"`

	QuantityPlanned int    `json:"quantity_planned"`
	Color           string `json:"color"`
}

func (h *PlanCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	switch req.Method {
	case timeline.MethodTransplant, timeline.MethodDirectSeed, timeline.MethodBoth:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "method must be transplant, direct_seed or both"})
	}
	if req.SeasonID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "season_id is required"})
	}
	p := &entities.CropPlan{
		UserID: uid, SeasonID: req.SeasonID, GardenID: req.GardenID,
		PlantTypeID: req.PlantTypeID, ProfileID: req.ProfileID, VarietyID: req.VarietyID,
		Method:               req.Method,
		SeedOffsetDays:       req.SeedOffsetDays,
		TransplantOffsetDays: req.TransplantOffsetDays,
		SowOffsetDays:        req.SowOffsetDays,
		DaysToMaturity:       req.DaysToMaturity,
		HarvestWindowDays:    req.HarvestWindowDays,
		QuantityPlanned:      req.QuantityPlanned,
		Color:                req.Color,
		Status:               "draft",
	}
	if err := h.plans.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlanCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.plans.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) ListBySeason(c echo.Context) error {
	uid := c.Get("uid").(string)
	sid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.plans.ListBySeason(uint(sid), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Generate runs the regeneration coordinator for one plan. The whole
// previous task set is replaced.
func (h *PlanCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))

	res, err := h.svc.Regenerate(uint(id), uid, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "crop plan not found"})
		case errors.Is(err, timeline.ErrMissingFrostDate):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{
				"error": "no last frost date: set one on the season or in your settings",
			})
		case errors.Is(err, timeline.ErrInvalidFrostDate):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{
				"error": "stored last frost date is not a valid date",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "task generation failed"})
		}
	}

	if c.QueryParam("format") == "calendar" {
		type calItem struct {
			TaskID uint   `json:"task_id"`
			Type   string `json:"type"`
			Title  string `json:"title"`
			End    string `json:"end_date"`
			Status string `json:"status"`
		}
		cal := map[string][]calItem{} // "YYYY-MM-DD" -> items starting that day
		for _, t := range res.Tasks {
			ds := t.StartDate.Format("2006-01-02")
			cal[ds] = append(cal[ds], calItem{
				TaskID: t.TaskID, Type: t.Type, Title: t.Title,
				End: t.EndDate.Format("2006-01-02"), Status: t.Status,
			})
		}
		return c.JSON(http.StatusCreated, map[string]any{
			"plan_id":       id,
			"tasks_created": res.TasksCreated,
			"calendar":      cal,
		})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"plan_id":       id,
		"tasks_created": res.TasksCreated,
		"tasks":         res.Tasks,
	})
}
