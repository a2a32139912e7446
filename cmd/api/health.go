package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "bmi-calculator"

// PingResponse reports that the calculator is up
type PingResponse struct {
	Message string `json:"message" example:"pong"`           // Response message
	Service string `json:"service" example:"bmi-calculator"` // Name of the answering service
	Metrics bool   `json:"metrics" example:"true"`           // Whether /metrics is served
}

// handlePing godoc
// @Summary Ping health check
// @Description Check that the BMI calculator is running and whether it exposes metrics
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: serviceName,
		Metrics: app.registry != nil,
	})
}
