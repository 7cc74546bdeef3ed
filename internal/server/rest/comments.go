package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/server/models"
)

// parseCommentOwner resolves the entity_type/entity_uid parameters into
// the CommentOwner variant. This is the only place the wire-level
// discriminator exists; everything below the shell works with the variant.
func parseCommentOwner(entityType, entityUID string) (models.CommentOwner, bool) {
	switch entityType {
	case "post":
		return models.PostOwner(entityUID), true
	case "look":
		return models.LookOwner(entityUID), true
	default:
		return models.CommentOwner{}, false
	}
}

func invalidEntityTypeResponse(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errEnvelope("Field entity_type must be 'post' or 'look'"))
}

type commentRequest struct {
	EntityUID  string `json:"entity_uid" form:"entity_uid" query:"entity_uid"`
	EntityType string `json:"entity_type" form:"entity_type" query:"entity_type"`
	Kind       int    `json:"kind" form:"kind"`
	Content    string `json:"content" form:"content"`
	NumLikes   int    `json:"num_likes" form:"num_likes"`
}

func (r *commentRequest) toModel() *models.Comment {
	return &models.Comment{
		Kind:     models.CommentKind(r.Kind),
		Content:  r.Content,
		NumLikes: r.NumLikes,
	}
}

func (h *Handler) handleCommentCreate(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{
		"entity_uid": req.EntityUID, "entity_type": req.EntityType, "content": req.Content,
	}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}
	owner, ok := parseCommentOwner(req.EntityType, req.EntityUID)
	if !ok {
		return invalidEntityTypeResponse(c)
	}

	uid, err := h.comments.Create(c.Request().Context(), owner, req.toModel())
	if err != nil {
		h.logger.Error(c.Request().Context(), "comment creation failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("Failed to create comment. Please try again."))
	}

	res := okEnvelope("Comment created successfully")
	return c.JSON(http.StatusCreated, struct {
		envelope
		UID string `json:"uid"`
	}{res, uid})
}

// ownerFromQuery validates and resolves entity_uid/entity_type query
// parameters shared by the read and delete handlers.
func (h *Handler) ownerFromQuery(c echo.Context) (models.CommentOwner, error) {
	entityUID := c.QueryParam("entity_uid")
	entityType := c.QueryParam("entity_type")
	if missing := requireFields(map[string]string{
		"entity_uid": entityUID, "entity_type": entityType,
	}); len(missing) > 0 {
		return models.CommentOwner{}, missingFieldsResponse(c, missing)
	}
	owner, ok := parseCommentOwner(entityType, entityUID)
	if !ok {
		return models.CommentOwner{}, invalidEntityTypeResponse(c)
	}
	return owner, nil
}

func (h *Handler) handleCommentList(c echo.Context) error {
	owner, err := h.ownerFromQuery(c)
	if err != nil {
		return err
	}

	comments, err := h.comments.List(c.Request().Context(), owner)
	if err != nil {
		h.logger.Error(c.Request().Context(), "comment listing failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("An error occurred. Please try again"))
	}

	res := okEnvelope("Comments found successfully")
	for i := range comments {
		res.Parameters = append(res.Parameters, presentComment(&comments[i]))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handleCommentGet(c echo.Context) error {
	owner, err := h.ownerFromQuery(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.Get(c.Request().Context(), owner, c.Param("uid"))
	if err != nil {
		return notFoundResponse(c)
	}

	return c.JSON(http.StatusOK, struct {
		envelope
		commentPayload
	}{okEnvelope("Comment found successfully"), presentComment(comment)})
}

func (h *Handler) handleCommentUpdate(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{
		"entity_uid": req.EntityUID, "entity_type": req.EntityType, "content": req.Content,
	}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}
	owner, ok := parseCommentOwner(req.EntityType, req.EntityUID)
	if !ok {
		return invalidEntityTypeResponse(c)
	}

	comment := req.toModel()
	comment.UID = c.Param("uid")

	affected, err := h.comments.Update(c.Request().Context(), owner, comment)
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to update comment. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Comment updated successfully"))
}

func (h *Handler) handleCommentDelete(c echo.Context) error {
	owner, err := h.ownerFromQuery(c)
	if err != nil {
		return err
	}

	affected, err := h.comments.Delete(c.Request().Context(), owner, c.Param("uid"))
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to delete comment. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Comment deleted successfully"))
}
