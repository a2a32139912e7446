package main

import (
	"net/http"

	"bmi-calculator/internal/form"

	"github.com/gin-gonic/gin"
)

// handleSubmitBMI godoc
// @Summary Submit the BMI form
// @Description Computes the BMI for the submitted fields and returns the text for the result area. Unusable input is not rejected; it shows up as NaN or Infinity.
// @Tags bmi
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param height_ft formData string false "Height, feet component" example(5)
// @Param height_in formData string false "Height, inches component" example(10)
// @Param weight formData string false "Weight in pounds" example(180)
// @Success 200 {string} string "Your BMI is 25.82"
// @Router /bmi [post]
func (app *App) handleSubmitBMI(c *gin.Context) {
	var sub form.Submission

	// A body that cannot be bound leaves the fields empty, which yields NaN
	if err := c.ShouldBind(&sub); err != nil {
		app.logger.Debug("failed to bind form submission", "error", err)
	}

	app.respond(c, sub)
}

// handleQueryBMI godoc
// @Summary Compute a BMI from query parameters
// @Description Same contract as the form submission with the fields read from the query string.
// @Tags bmi
// @Produce plain
// @Param height_ft query string false "Height, feet component" example(6)
// @Param height_in query string false "Height, inches component" example(0)
// @Param weight query string false "Weight in pounds" example(200)
// @Success 200 {string} string "Your BMI is 27.12"
// @Router /bmi [get]
func (app *App) handleQueryBMI(c *gin.Context) {
	var sub form.Submission

	if err := c.ShouldBindQuery(&sub); err != nil {
		app.logger.Debug("failed to bind query", "error", err)
	}

	app.respond(c, sub)
}

// respond always answers 200 with the result text and never redirects
func (app *App) respond(c *gin.Context, sub form.Submission) {
	result := app.formService.Submit(sub)
	c.String(http.StatusOK, "%s", result.Message)
}
