package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/rest/response"
)

type readerHandler struct {
	Service domain.ReaderUsecase
}

func NewReaderHandler(svc domain.ReaderUsecase) *readerHandler {
	return &readerHandler{
		Service: svc,
	}
}

// MarkRead records the article into the caller's read list. Repeated
// calls are no-ops reported as such.
func (h *readerHandler) MarkRead(c *gin.Context) {
	aid, ok := articleID(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	added, err := h.Service.MarkRead(c.Request.Context(), caller.UserID, aid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	message := "Article already in read list"
	if added {
		message = "Article added to read list"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Profile returns the caller's aggregated read progress.
func (h *readerHandler) Profile(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	profile, err := h.Service.Profile(c.Request.Context(), caller.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProfileFromDomain(profile))
}
