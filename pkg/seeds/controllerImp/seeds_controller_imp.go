package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/seeds/importer"
	"sprout/pkg/seeds/repository"
)

type SeedCtrl struct{ repo repository.SeedRepository }

func New(repo repository.SeedRepository) *SeedCtrl { return &SeedCtrl{repo} }

func (h *SeedCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req struct {
		PlantTypeID *uint  `json:"plant_type_id"`
		VarietyID   *uint  `json:"variety_id"`
		PlantName   string `json:"plant_name"`
		VarietyName string `json:"variety_name"`
		Vendor      string `json:"vendor"`
		PackedFor   int    `json:"packed_for"`
		SeedCount   *int   `json:"seed_count"`
		Notes       string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.PlantName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "plant_name is required"})
	}
	p := &entities.SeedPacket{
		UserID: uid, PlantTypeID: req.PlantTypeID, VarietyID: req.VarietyID,
		PlantName: req.PlantName, VarietyName: req.VarietyName, Vendor: req.Vendor,
		PackedFor: req.PackedFor, SeedCount: req.SeedCount, Notes: req.Notes,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *SeedCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Import ingests an uploaded .xlsx inventory (multipart field "file").
func (h *SeedCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot open upload"})
	}
	defer f.Close()

	packets, err := importer.ReadXLSX(f, uid)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	if err := h.repo.BulkInsert(packets); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"imported": len(packets)})
}
