package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/server/models"
)

type lookRequest struct {
	Title       string `json:"title" form:"title"`
	Privacy     int    `json:"privacy" form:"privacy"`
	NumItems    int    `json:"num_items" form:"num_items"`
	NumLikes    int    `json:"num_likes" form:"num_likes"`
	NumComments int    `json:"num_comments" form:"num_comments"`
	NumShares   int    `json:"num_shares" form:"num_shares"`
}

func (r *lookRequest) toModel() *models.Look {
	return &models.Look{
		Title:       r.Title,
		Privacy:     models.Privacy(r.Privacy),
		NumItems:    r.NumItems,
		NumLikes:    r.NumLikes,
		NumComments: r.NumComments,
		NumShares:   r.NumShares,
	}
}

func (h *Handler) handleLookCreate(c echo.Context) error {
	var req lookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"title": req.Title}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	uid, err := h.looks.Create(c.Request().Context(), requesterUID(c), req.toModel())
	if err != nil {
		h.logger.Error(c.Request().Context(), "look creation failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("Failed to create look. Please try again."))
	}

	res := okEnvelope("Look created successfully")
	return c.JSON(http.StatusCreated, struct {
		envelope
		UID string `json:"uid"`
	}{res, uid})
}

func (h *Handler) handleLookList(c echo.Context) error {
	looks, err := h.looks.List(c.Request().Context(), requesterUID(c))
	if err != nil {
		h.logger.Error(c.Request().Context(), "look listing failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("An error occurred. Please try again"))
	}

	res := okEnvelope("Looks found successfully")
	for i := range looks {
		res.Parameters = append(res.Parameters, presentLook(&looks[i]))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handleLookGet(c echo.Context) error {
	look, err := h.looks.Get(c.Request().Context(), requesterUID(c), c.Param("uid"))
	if err != nil {
		return notFoundResponse(c)
	}

	return c.JSON(http.StatusOK, struct {
		envelope
		lookPayload
	}{okEnvelope("Look found successfully"), presentLook(look)})
}

func (h *Handler) handleLookUpdate(c echo.Context) error {
	var req lookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"title": req.Title}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	look := req.toModel()
	look.UID = c.Param("uid")

	affected, err := h.looks.Update(c.Request().Context(), requesterUID(c), look)
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to update look. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Look updated successfully"))
}

func (h *Handler) handleLookDelete(c echo.Context) error {
	affected, err := h.looks.Delete(c.Request().Context(), requesterUID(c), c.Param("uid"))
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to delete look. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Look deleted successfully"))
}
