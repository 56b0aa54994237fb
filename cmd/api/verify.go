package main

import (
	"fmt"
	"net/http"
	"strings"

	"tourguide/internal/guide"
	"tourguide/internal/types"

	"github.com/gin-gonic/gin"
)

// VerifyPlaceInput is the request body for the verify-place endpoint
type VerifyPlaceInput struct {
	Place    string `json:"place" example:"Bangalore"` // Place name to verify
	Language string `json:"language" example:"en"`     // Response language code
}

// VerifyPlaceResponse is the pre-flight verification result for a place
type VerifyPlaceResponse struct {
	Success     bool          `json:"success"`
	Place       string        `json:"place"`
	FoundPlace  string        `json:"found_place"`
	PlaceType   string        `json:"place_type"`
	Country     string        `json:"country"`
	Coordinates *types.Coords `json:"coordinates"`
	Message     string        `json:"message"`
	Confidence  string        `json:"confidence"`
}

// handleVerifyPlace godoc
// @Summary Verify that a place exists
// @Description Run the strict verification policy for a place name without fetching any facet data. Useful for pre-flight display before a full query.
// @Tags query
// @Accept json
// @Produce json
// @Param request body VerifyPlaceInput true "Place to verify"
// @Success 200 {object} VerifyPlaceResponse
// @Failure 400 {object} QueryErrorResponse
// @Failure 404 {object} QueryErrorResponse
// @Router /api/verify-place [post]
func (app *App) handleVerifyPlace(c *gin.Context) {
	var input VerifyPlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{Error: err.Error()})
		return
	}

	input.Place = strings.TrimSpace(input.Place)
	if input.Place == "" {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{
			Error: app.translated(c, "Please provide a place name", input.Language),
		})
		return
	}

	outcome := app.guideService.Verify(c.Request.Context(), input.Place)
	if outcome.Status != types.VerificationVerified {
		// The rejected candidate is exposed separately, never as the match
		var foundPlace string
		if outcome.Place != nil {
			foundPlace = outcome.Place.DisplayName
		}
		c.JSON(http.StatusNotFound, QueryErrorResponse{
			Error:      app.translated(c, guide.MsgUnknownPlace, input.Language),
			FoundPlace: foundPlace,
		})
		return
	}

	rec := outcome.Place
	c.JSON(http.StatusOK, VerifyPlaceResponse{
		Success:     true,
		Place:       input.Place,
		FoundPlace:  rec.DisplayName,
		PlaceType:   rec.FeatureType,
		Country:     rec.Country,
		Coordinates: &rec.Coordinates,
		Message:     app.translated(c, fmt.Sprintf("Found %s", rec.DisplayName), input.Language),
		Confidence:  string(rec.MatchConfidence),
	})
}
