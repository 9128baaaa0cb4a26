package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/catalog/repository"
)

type CatalogCtrl struct{ repo repository.CatalogRepository }

func New(repo repository.CatalogRepository) *CatalogCtrl { return &CatalogCtrl{repo} }

func (h *CatalogCtrl) ListPlantTypes(c echo.Context) error {
	out, err := h.repo.ListPlantTypes()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) ListProfiles(c echo.Context) error {
	pt, _ := strconv.Atoi(c.QueryParam("plant_type_id"))
	out, err := h.repo.ListProfiles(uint(pt))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) ListVarieties(c echo.Context) error {
	pt, _ := strconv.Atoi(c.QueryParam("plant_type_id"))
	out, err := h.repo.ListVarieties(uint(pt))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) CreateVariety(c echo.Context) error {
	var v entities.Variety
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if v.Name == "" || v.PlantTypeID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and plant_type_id are required"})
	}
	if err := h.repo.CreateVariety(&v); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}
