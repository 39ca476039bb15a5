package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
	"github.com/Ollie-C/myvu-movies-sub000/services"
)

type SessionController struct {
	sessionService *services.SessionService
}

func NewSessionController(sessionService *services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (c *SessionController) CreateSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := c.sessionService.CreateSession(ctx.Request.Context(), userID, &req)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

func (c *SessionController) ListSessions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	sessions, err := c.sessionService.ListSessions(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

func (c *SessionController) GetSession(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	session, items, err := c.sessionService.GetSession(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"session": session, "items": items})
}

func (c *SessionController) PauseSession(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	if err := c.sessionService.Pause(ctx.Request.Context(), userID, sessionID); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Session paused"})
}

func (c *SessionController) ResumeSession(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	if err := c.sessionService.Resume(ctx.Request.Context(), userID, sessionID); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Session resumed"})
}

func (c *SessionController) RateMovie(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.RateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snippet, err := c.sessionService.RateMovie(ctx.Request.Context(), userID, sessionID, &req)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"league_snippet": snippet})
}

func (c *SessionController) LeagueSnippet(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.LeagueSnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snippet, err := c.sessionService.LeagueSnippet(ctx.Request.Context(), userID, sessionID, &req)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"league_snippet": snippet})
}

func (c *SessionController) Reorder(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.sessionService.Reorder(ctx.Request.Context(), userID, sessionID, &req); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (c *SessionController) AssignTier(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.AssignTierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.sessionService.AssignTier(ctx.Request.Context(), userID, sessionID, &req); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Tier assigned"})
}

// currentUserID pulls the authenticated user out of the gin context and
// answers the request itself when authentication is missing.
func currentUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	userIDStr, ok := userID.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return primitive.NilObjectID, false
	}
	objID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return primitive.NilObjectID, false
	}
	return objID, true
}

func sessionRequest(ctx *gin.Context) (primitive.ObjectID, primitive.ObjectID, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	sessionID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, sessionID, true
}

// statusFromError maps engine and service errors onto HTTP statuses. The
// engine's errors are deterministic, so a 4xx here means the client can
// fix the request and retry.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMovieNotInSession),
		errors.Is(err, engine.ErrInvalidPair),
		errors.Is(err, engine.ErrInsufficientItems),
		errors.Is(err, engine.ErrInvalidPolicy):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSessionNotActive):
		return http.StatusConflict
	case errors.Is(err, engine.ErrPersistenceConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
