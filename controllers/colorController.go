package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ColorController struct {
	colors *store.ColorRepository
	log    zerolog.Logger
}

func NewColorController(colors *store.ColorRepository, log zerolog.Logger) *ColorController {
	return &ColorController{colors: colors, log: log}
}

func (c *ColorController) CreateColor(ctx *gin.Context) {
	var color models.Color
	if err := ctx.ShouldBindJSON(&color); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.colors.Create(&color); err != nil {
		c.log.Error().Err(err).Msg("failed to create color")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusCreated, color)
}

func (c *ColorController) GetColor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("colorId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse colorId")
		return
	}

	color, err := c.colors.ByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Color not found")
			return
		}
		c.log.Error().Err(err).Msg("failed to fetch color")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, color)
}

func (c *ColorController) DeleteColor(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("colorId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse colorId")
		return
	}

	if err := c.colors.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Color not found")
			return
		}
		c.log.Error().Err(err).Msg("failed to delete color")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Color deleted successfully"})
}
