package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	repo "sprout/pkg/journal/repository"
)

type JournalCtrl struct{ repo repo.JournalRepository }

func New(repo repo.JournalRepository) *JournalCtrl { return &JournalCtrl{repo} }

type entryReq struct {
	Date     string   `json:"date"`
	Note     string   `json:"note"`
	PhotoURL string   `json:"photo_url"`
	HeightCM *float64 `json:"height_cm"`
}

func (h *JournalCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	gid, _ := strconv.Atoi(c.Param("id"))
	var req entryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	e := &entities.JournalEntry{
		GardenID: uint(gid), UserID: uid, Date: d,
		Note: req.Note, PhotoURL: req.PhotoURL, HeightCM: req.HeightCM,
	}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *JournalCtrl) List(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.Recent(uint(gid), 90)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
