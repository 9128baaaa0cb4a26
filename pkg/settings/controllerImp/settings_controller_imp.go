package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/settings/repository"
)

type SettingsCtrl struct{ repo repository.SettingsRepository }

func New(repo repository.SettingsRepository) *SettingsCtrl { return &SettingsCtrl{repo} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	s, err := h.repo.Find(uid)
	if err != nil {
		// no row yet: hand back an empty settings object, not a 404
		return c.JSON(http.StatusOK, entities.UserSettings{UserID: uid})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SettingsCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		LastFrostDate string `json:"last_frost_date"`
		Hemisphere    string `json:"hemisphere"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.LastFrostDate != "" {
		if _, err := time.Parse("2006-01-02", req.LastFrostDate); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "last_frost_date must be YYYY-MM-DD"})
		}
	}
	s := &entities.UserSettings{UserID: uid, LastFrostDate: req.LastFrostDate, Hemisphere: req.Hemisphere}
	if err := h.repo.Upsert(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
