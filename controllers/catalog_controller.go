package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ollie-C/myvu-movies-sub000/models"
	"github.com/Ollie-C/myvu-movies-sub000/services"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetMovie looks a catalog movie up by its exact title.
func (c *CatalogController) GetMovie(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	movie, err := c.catalogService.FindByTitle(ctx.Request.Context(), title)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if movie == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

// HydrateMovie refreshes a catalog movie from OMDB, picking up poster,
// public rating and the vote volume the merged ranking feeds on.
func (c *CatalogController) HydrateMovie(ctx *gin.Context) {
	var req models.HydrateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := c.catalogService.Hydrate(ctx.Request.Context(), req.Title)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, movie)
}
