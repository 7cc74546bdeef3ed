package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okatkov/lookbook/internal/server/models"
)

type postRequest struct {
	Content     string `json:"content" form:"content"`
	Privacy     int    `json:"privacy" form:"privacy"`
	NumLikes    int    `json:"num_likes" form:"num_likes"`
	NumComments int    `json:"num_comments" form:"num_comments"`
	NumShares   int    `json:"num_shares" form:"num_shares"`
}

func (r *postRequest) toModel() *models.Post {
	return &models.Post{
		Content:     r.Content,
		Privacy:     models.Privacy(r.Privacy),
		NumLikes:    r.NumLikes,
		NumComments: r.NumComments,
		NumShares:   r.NumShares,
	}
}

func (h *Handler) handlePostCreate(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"content": req.Content}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	uid, err := h.posts.Create(c.Request().Context(), requesterUID(c), req.toModel())
	if err != nil {
		h.logger.Error(c.Request().Context(), "post creation failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("Failed to create post. Please try again."))
	}

	res := okEnvelope("Post created successfully")
	return c.JSON(http.StatusCreated, struct {
		envelope
		UID string `json:"uid"`
	}{res, uid})
}

func (h *Handler) handlePostList(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context(), requesterUID(c))
	if err != nil {
		h.logger.Error(c.Request().Context(), "post listing failed", "error", err)
		return c.JSON(http.StatusOK, errEnvelope("An error occurred. Please try again"))
	}

	res := okEnvelope("Posts found successfully")
	for i := range posts {
		res.Parameters = append(res.Parameters, presentPost(&posts[i]))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handlePostGet(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), requesterUID(c), c.Param("uid"))
	if err != nil {
		return notFoundResponse(c)
	}

	return c.JSON(http.StatusOK, struct {
		envelope
		postPayload
	}{okEnvelope("Post found successfully"), presentPost(post)})
}

func (h *Handler) handlePostUpdate(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errEnvelope("Malformed request body"))
	}
	if missing := requireFields(map[string]string{"content": req.Content}); len(missing) > 0 {
		return missingFieldsResponse(c, missing)
	}

	post := req.toModel()
	post.UID = c.Param("uid")

	affected, err := h.posts.Update(c.Request().Context(), requesterUID(c), post)
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to update post. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Post updated successfully"))
}

func (h *Handler) handlePostDelete(c echo.Context) error {
	affected, err := h.posts.Delete(c.Request().Context(), requesterUID(c), c.Param("uid"))
	if err != nil || affected == 0 {
		return c.JSON(http.StatusOK, errEnvelope("Failed to delete post. Please try again."))
	}

	return c.JSON(http.StatusOK, okEnvelope("Post deleted successfully"))
}
