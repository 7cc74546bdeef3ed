package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Item operations are scoped by the owning look, so every request carries
// a look_uid alongside the item fields.
type itemRequest struct {
	LookUID string   `json:"look_uid" form:"look_uid" query:"look_uid"`
	Title   string   `json:"title" form:"title"`
	Images  []string `json:"images" form:"images"`
}

func (r *itemRequest) toModel() *models.Item {
	return &models.Item{
		Title:  r.Title,
		Images: r.Images,
	}
}

func (h *Handler) handleItemCreate(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"look_uid": req.LookUID, "title": req.Title}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	uid, err := h.items.Create(c.Request().Context(), req.LookUID, req.toModel())
	if err != nil {
		h.logger.Error(c.Request().Context(), "item creation failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("Failed to create item. Please try again."))
	}

	res := okEnvelope("Item created successfully")
	return c.JSON(http.StatusCreated, struct {
		envelope
		UID string `json:"uid"`
	}{res, uid})
}

func (h *Handler) handleItemList(c echo.Context) error {
	lookUID := c.QueryParam("look_uid")
	if missing := requireFields(map[string]string{"look_uid": lookUID}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	items, err := h.items.List(c.Request().Context(), lookUID)
	if err != nil {
		h.logger.Error(c.Request().Context(), "item listing failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("An error occurred. Please try again"))
	}

	res := okEnvelope("Items found successfully")
	for i := range items {
		res.Parameters = append(res.Parameters, presentItem(&items[i]))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handleItemGet(c echo.Context) error {
	lookUID := c.QueryParam("look_uid")
	if missing := requireFields(map[string]string{"look_uid": lookUID}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	item, err := h.items.Get(c.Request().Context(), lookUID, c.Param("uid"))
	if err != nil {
		return notFoundResponse(c)
	}

	return c.JSON(http.StatusOK, struct {
		envelope
		itemPayload
	}{okEnvelope("Item found successfully"), presentItem(item)})
}

func (h *Handler) handleItemUpdate(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"look_uid": req.LookUID, "title": req.Title}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	item := req.toModel()
	item.UID = c.Param("uid")

	affected, err := h.items.Update(c.Request().Context(), req.LookUID, item)
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to update item. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Item updated successfully"))
}

func (h *Handler) handleItemDelete(c echo.Context) error {
	lookUID := c.QueryParam("look_uid")
	if missing := requireFields(map[string]string{"look_uid": lookUID}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	affected, err := h.items.Delete(c.Request().Context(), lookUID, c.Param("uid"))
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to delete item. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Item deleted successfully"))
}
