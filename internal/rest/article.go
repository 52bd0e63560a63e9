package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/rest/request"
	"github.com/lawaware/backend/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArticleHandler represent the httphandler for the article catalog
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// Create stores a new article, admin only.
func (a *ArticleHandler) Create(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Please provide all required fields"})
		return
	}

	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	article := req.ToDomain()
	ctx := c.Request.Context()
	if err := a.Service.Create(ctx, caller, &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update modifies an existing article, admin only.
func (a *ArticleHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Please provide all required fields"})
		return
	}

	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	article := req.ToDomain()
	article.ID = id

	ctx := c.Request.Context()
	if err := a.Service.Update(ctx, caller, &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&article))
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)
	ctx := c.Request.Context()

	art, err := a.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// List returns one page of the catalog. An invalid page param falls
// back to the first page, and a page past the end is an empty result
// with correct metadata, never an error.
func (a *ArticleHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	ctx := c.Request.Context()
	res, err := a.Service.List(ctx, page)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticlePageFromDomain(res))
}

// callerIdentity pulls the authenticated caller set by the auth
// middleware; aborts with 401 when it is absent.
func callerIdentity(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get("identity")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return domain.Identity{}, false
	}
	return v.(domain.Identity), true
}

// getStatusCode will get the http status code of the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
