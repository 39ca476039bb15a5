package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ollie-C/myvu-movies-sub000/models"
	"github.com/Ollie-C/myvu-movies-sub000/services"
)

type BattleController struct {
	battleService *services.BattleService
}

func NewBattleController(battleService *services.BattleService) *BattleController {
	return &BattleController{
		battleService: battleService,
	}
}

// GetBattlePair serves the next comparison of a session, or done=true
// when the battle-limit policy is satisfied.
func (c *BattleController) GetBattlePair(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	pair, err := c.battleService.NextPair(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, pair)
}

func (c *BattleController) SubmitBattle(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.SubmitBattleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, progress, err := c.battleService.SubmitBattle(ctx.Request.Context(), userID, sessionID, &req)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": result, "progress": progress})
}

func (c *BattleController) SkipPair(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	var req models.SkipPairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.battleService.SkipPair(ctx.Request.Context(), userID, sessionID, &req); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Pair skipped"})
}

func (c *BattleController) GetProgress(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	progress, err := c.battleService.Progress(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, progress)
}

func (c *BattleController) GetLeaderboard(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	leaderboard, err := c.battleService.Leaderboard(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, leaderboard)
}

func (c *BattleController) GetMergedRankings(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	rankings, err := c.battleService.MergedRankings(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, rankings)
}

func (c *BattleController) GetHistory(ctx *gin.Context) {
	userID, sessionID, ok := sessionRequest(ctx)
	if !ok {
		return
	}

	history, err := c.battleService.History(ctx.Request.Context(), userID, sessionID)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, history)
}
