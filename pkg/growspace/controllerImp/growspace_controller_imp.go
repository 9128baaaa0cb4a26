package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/growspace/repository"
)

type SpaceCtrl struct{ repo repository.GrowSpaceRepository }

func New(repo repository.GrowSpaceRepository) *SpaceCtrl { return &SpaceCtrl{repo} }

func (h *SpaceCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		Name         string `json:"name"`
		Kind         string `json:"kind"`
		LightHours   *int   `json:"light_hours"`
		TrayCapacity *int   `json:"tray_capacity"`
		Heated       bool   `json:"heated"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	g := &entities.GrowSpace{
		UserID: uid, Name: req.Name, Kind: req.Kind,
		LightHours: req.LightHours, TrayCapacity: req.TrayCapacity, Heated: req.Heated,
	}
	if err := h.repo.Create(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *SpaceCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
