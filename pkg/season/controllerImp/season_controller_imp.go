package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/season/repository"
)

type SeasonCtrl struct{ repo repository.SeasonRepository }

func New(repo repository.SeasonRepository) *SeasonCtrl { return &SeasonCtrl{repo} }

type createReq struct {
	Name           string `json:"name"`
	Year           int    `json:"year"`
	LastFrostDate  string `json:"last_frost_date"`
	FirstFrostDate string `json:"first_frost_date"`
}

func (h *SeasonCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	for _, d := range []string{req.LastFrostDate, req.FirstFrostDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "frost dates must be YYYY-MM-DD"})
		}
	}
	s := &entities.Season{
		UserID: uid, Name: req.Name, Year: req.Year,
		LastFrostDate: req.LastFrostDate, FirstFrostDate: req.FirstFrostDate,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SeasonCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeasonCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
