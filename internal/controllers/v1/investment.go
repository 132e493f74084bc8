package v1

import (
	"errors"
	"net/http"

	"github.com/gargantua-app/backend/internal/httputil"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/investments"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	{
		settings.OPTIONS("", OptionsInvestmentSettings)
		settings.GET("", GetInvestmentSettings)
		settings.PUT("", UpdateInvestmentSettings)
	}

	projection := r.Group("/projection")
	{
		projection.OPTIONS("", OptionsInvestmentProjection)
		projection.GET("", GetInvestmentProjection)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments/settings [options]
func OptionsInvestmentSettings(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments/projection [options]
func OptionsInvestmentProjection(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get investment settings
// @Description	Returns the investment settings of the current user. The data is null when no settings have been saved yet.
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentSettingsResponse
// @Failure		401	{object}	InvestmentSettingsResponse
// @Failure		500	{object}	InvestmentSettingsResponse
// @Router			/v1/investments/settings [get]
func GetInvestmentSettings(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := investmentSettingsForUser(user)
	if err != nil {
		// Unconfigured settings are not an error, the data is null
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, InvestmentSettingsResponse{})
			return
		}

		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	data := newInvestmentSettings(settings)
	c.JSON(http.StatusOK, InvestmentSettingsResponse{Data: &data})
}

// @Summary		Update investment settings
// @Description	Creates or replaces the investment settings of the current user
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvestmentSettingsResponse
// @Failure		400			{object}	InvestmentSettingsResponse
// @Failure		401			{object}	InvestmentSettingsResponse
// @Failure		500			{object}	InvestmentSettingsResponse
// @Param			settings	body		InvestmentSettingsEditable	true	"Investment settings"
// @Router			/v1/investments/settings [put]
func UpdateInvestmentSettings(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	var editable InvestmentSettingsEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := investmentSettingsForUser(user)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	update := editable.model(user.ID)
	if errors.Is(err, models.ErrResourceNotFound) {
		settings = update
		err = models.DB.Create(&settings).Error
	} else {
		update.DefaultModel = settings.DefaultModel
		settings = update
		err = models.DB.Save(&settings).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentSettingsResponse{
			Error: &e,
		})
		return
	}

	data := newInvestmentSettings(settings)
	publishUpdate(user.ID, tableInvestmentSettings, settings.ID, data)
	c.JSON(http.StatusOK, InvestmentSettingsResponse{Data: &data})
}

// @Summary		Get investment projection
// @Description	Returns the investment settings of the current user together with the year-by-year projection they produce
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentProjectionResponse
// @Failure		401	{object}	InvestmentProjectionResponse
// @Failure		500	{object}	InvestmentProjectionResponse
// @Router			/v1/investments/projection [get]
func GetInvestmentProjection(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentProjectionResponse{
			Error: &e,
		})
		return
	}

	settings, err := investmentSettingsForUser(user)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, InvestmentProjectionResponse{
				Data: &InvestmentProjection{
					Projection: []investments.ProjectionYear{},
				},
			})
			return
		}

		e := err.Error()
		c.JSON(status(err), InvestmentProjectionResponse{
			Error: &e,
		})
		return
	}

	data := newInvestmentSettings(settings)
	c.JSON(http.StatusOK, InvestmentProjectionResponse{
		Data: &InvestmentProjection{
			Settings:   &data,
			Projection: investments.Project(settings),
		},
	})
}

func investmentSettingsForUser(user identity.User) (models.InvestmentSettings, error) {
	var settings models.InvestmentSettings
	err := models.DB.First(&settings, "user_id = ?", user.ID).Error
	if err != nil {
		return models.InvestmentSettings{}, err
	}

	return settings, nil
}
