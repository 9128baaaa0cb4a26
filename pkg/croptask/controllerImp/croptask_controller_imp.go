package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "sprout/pkg/croptask/repository"
)

type TaskCtrl struct{ repo repo.CropTaskRepository }

func New(repo repo.CropTaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

// ListByPlan returns a plan's generated tasks, earliest first.
func (h *TaskCtrl) ListByPlan(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByPlan(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// ListRange returns a season's tasks overlapping [from, to] for the
// calendar view.
func (h *TaskCtrl) ListRange(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListRange(uint(sid), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Patch updates status/completed quantity on one task. Manual edits
// survive until the plan's next regeneration replaces the whole set.
func (h *TaskCtrl) Patch(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Status  string `json:"status"`
		QtyDone *int   `json:"qty_done"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status == "" {
		body.Status = "done"
	}
	if err := h.repo.PatchStatus(uint(tid), body.Status, body.QtyDone); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
