package controllers

import (
	"errors"
	"net/http"

	"github.com/RedBeret/ChatPoweredEcommerce/middlewares"
	"github.com/RedBeret/ChatPoweredEcommerce/models"
	"github.com/RedBeret/ChatPoweredEcommerce/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const msgShippingNotFound = "Shipping information not found"

// ShippingController serves the session user's shipping profile.
type ShippingController struct {
	shipping *store.ShippingRepository
	log      zerolog.Logger
}

func NewShippingController(shipping *store.ShippingRepository, log zerolog.Logger) *ShippingController {
	return &ShippingController{shipping: shipping, log: log}
}

func (c *ShippingController) GetShippingInfo(ctx *gin.Context) {
	sess, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	info, err := c.shipping.ByUserID(sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgShippingNotFound)
			return
		}
		c.log.Error().Err(err).Msg("failed to fetch shipping info")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

func (c *ShippingController) CreateShippingInfo(ctx *gin.Context) {
	sess, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input models.ShippingInfoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	info := models.ShippingInfo{
		UserID:       sess.UserID,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		PhoneNumber:  input.PhoneNumber,
	}
	if err := c.shipping.Create(&info); err != nil {
		c.log.Error().Err(err).Msg("failed to create shipping info")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Shipping info added successfully"})
}

func (c *ShippingController) UpdateShippingInfo(ctx *gin.Context) {
	sess, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input models.UpdateShippingInfoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	fields := map[string]any{}
	if input.AddressLine1 != nil {
		fields["address_line1"] = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		fields["address_line2"] = *input.AddressLine2
	}
	if input.City != nil {
		fields["city"] = *input.City
	}
	if input.State != nil {
		fields["state"] = *input.State
	}
	if input.PostalCode != nil {
		fields["postal_code"] = *input.PostalCode
	}
	if input.Country != nil {
		fields["country"] = *input.Country
	}
	if input.PhoneNumber != nil {
		fields["phone_number"] = *input.PhoneNumber
	}
	if len(fields) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := c.shipping.Update(sess.UserID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgShippingNotFound)
			return
		}
		c.log.Error().Err(err).Msg("failed to update shipping info")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Shipping info updated successfully"})
}

func (c *ShippingController) DeleteShippingInfo(ctx *gin.Context) {
	sess, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := c.shipping.Delete(sess.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgShippingNotFound)
			return
		}
		c.log.Error().Err(err).Msg("failed to delete shipping info")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Shipping info deleted successfully"})
}
