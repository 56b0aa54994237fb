package main

import (
	"errors"
	"net/http"
	"strings"

	"tourguide/internal/guide"
	"tourguide/internal/translate"
	"tourguide/internal/types"

	"github.com/gin-gonic/gin"
)

// QueryInput is the request body for the query endpoint. Either a place name
// with explicit facet flags (structured mode) or free text (freetext mode).
type QueryInput struct {
	Place     string `json:"place" example:"Bangalore"`                  // Place name for structured mode
	UserInput string `json:"user_input" example:"plan my trip to Paris"` // Free text for freetext mode
	Mode      string `json:"mode" example:"structured"`                  // "structured" or "freetext"
	Weather   bool   `json:"weather" example:"true"`                     // Request the weather facet
	Places    bool   `json:"places" example:"true"`                      // Request the places facet
	Language  string `json:"language" example:"en"`                      // Response language code
}

// QueryResponse is the rendered answer for one query
type QueryResponse struct {
	Success     bool          `json:"success"`
	Response    string        `json:"response"`
	Place       string        `json:"place,omitempty"`
	Coordinates *types.Coords `json:"coordinates,omitempty"`
	Mode        string        `json:"mode"`
	Language    string        `json:"language,omitempty"`
}

// QueryErrorResponse carries a failed query outcome
type QueryErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	FoundPlace string `json:"found_place,omitempty"` // rejected candidate, if any
}

// handleQuery godoc
// @Summary Answer a place query
// @Description Resolve a place and answer the requested facets (weather, tourist attractions). Structured mode takes a place name plus facet flags; freetext mode extracts the place and intent from raw text.
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryInput true "Query"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} QueryErrorResponse
// @Failure 404 {object} QueryErrorResponse
// @Router /api/query [post]
func (app *App) handleQuery(c *gin.Context) {
	var input QueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{Error: err.Error()})
		return
	}

	input.Place = strings.TrimSpace(input.Place)
	if input.Place == "" && strings.TrimSpace(input.UserInput) == "" {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{Error: "Please provide a place name or query"})
		return
	}

	if input.Mode == "freetext" {
		app.handleFreeTextQuery(c, input)
		return
	}

	if input.Place == "" {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{Error: "Please provide a place name for structured mode"})
		return
	}

	result := app.guideService.Ask(c.Request.Context(), input.Place, types.NewFacets(input.Weather, input.Places))
	if !result.Verified {
		c.JSON(http.StatusNotFound, QueryErrorResponse{
			Error:      app.translated(c, result.Response, input.Language),
			FoundPlace: displayName(result),
		})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Success:     true,
		Response:    app.translated(c, result.Response, input.Language),
		Place:       input.Place,
		Coordinates: &result.Place.Coordinates,
		Mode:        "structured",
		Language:    translate.Resolve(input.Language),
	})
}

func (app *App) handleFreeTextQuery(c *gin.Context, input QueryInput) {
	if strings.TrimSpace(input.UserInput) == "" {
		c.JSON(http.StatusBadRequest, QueryErrorResponse{Error: "Please enter your query in the text area"})
		return
	}

	result, err := app.guideService.AskFreeText(c.Request.Context(), input.UserInput)
	if err != nil {
		if errors.Is(err, guide.ErrExtractorUnavailable) {
			c.JSON(http.StatusBadRequest, QueryErrorResponse{
				Error: "Freetext mode is not available. OpenAI API key is missing. Please use structured mode instead.",
			})
			return
		}
		app.logger.Error("freetext query failed", "error", err)
		c.JSON(http.StatusInternalServerError, QueryErrorResponse{Error: "Error processing query. Try structured mode instead."})
		return
	}

	if !result.Verified {
		c.JSON(http.StatusNotFound, QueryErrorResponse{
			Error:      app.translated(c, result.Response, input.Language),
			FoundPlace: displayName(result),
		})
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Success:     true,
		Response:    app.translated(c, result.Response, input.Language),
		Place:       result.Place.Query,
		Coordinates: &result.Place.Coordinates,
		Mode:        "freetext",
		Language:    translate.Resolve(input.Language),
	})
}

// LanguagesResponse lists the supported response languages
type LanguagesResponse struct {
	Languages map[string]string `json:"languages"`
}

// handleLanguages godoc
// @Summary List supported response languages
// @Tags query
// @Produce json
// @Success 200 {object} LanguagesResponse
// @Router /api/languages [get]
func (app *App) handleLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, LanguagesResponse{Languages: translate.Languages()})
}

func (app *App) translated(c *gin.Context, text, lang string) string {
	return app.translator.Translate(c.Request.Context(), text, lang)
}

func displayName(result *guide.Result) string {
	if result.Place == nil {
		return ""
	}
	return result.Place.DisplayName
}
