package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/rest/request"
	"github.com/lawaware/backend/internal/rest/response"
)

type engagementHandler struct {
	Service domain.EngagementUsecase
}

func NewEngagementHandler(svc domain.EngagementUsecase) *engagementHandler {
	return &engagementHandler{
		Service: svc,
	}
}

// ToggleLike flips the caller's like on the article.
func (h *engagementHandler) ToggleLike(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	liked, err := h.Service.ToggleLike(c.Request.Context(), aid, caller.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	message := "Article unliked"
	if liked {
		message = "Article liked"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "message": message})
}

// LikeStatus reports membership without mutating anything.
func (h *engagementHandler) LikeStatus(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	liked, err := h.Service.LikeStatus(c.Request.Context(), aid, caller.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// AddComment appends a comment to the article.
func (h *engagementHandler) AddComment(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	comment, err := h.Service.AddComment(c.Request.Context(), aid, caller.UserID, req.Text)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added",
		"comment": response.NewCommentFromDomain(&comment),
	})
}

// ListComments returns the article's comments in append order with
// usernames resolved.
func (h *engagementHandler) ListComments(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		return
	}

	comments, err := h.Service.ListComments(c.Request.Context(), aid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, gin.H{"comments": res})
}

func articleID(c *gin.Context) (int64, bool) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return int64(idP), true
}
