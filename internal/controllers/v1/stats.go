package v1

import (
	"net/http"

	"github.com/gargantua-app/backend/internal/httputil"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gargantua-app/backend/internal/stats"
	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the routes for statistics with the
// RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.OPTIONS("", OptionsStats)
		dashboard.GET("", GetDashboard)
	}

	monthly := r.Group("/monthly")
	{
		monthly.OPTIONS("", OptionsStats)
		monthly.GET("", GetMonthSeries)
	}

	daily := r.Group("/daily")
	{
		daily.OPTIONS("", OptionsStats)
		daily.GET("", GetDaySeries)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats/dashboard [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the dashboard statistics of the current user: balance, monthly income and expenses, savings rate and its change against the previous month
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/stats/dashboard [get]
func GetDashboard(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	transactions, err := models.UserTransactions(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	data := newDashboard(stats.CalculateDashboard(transactions, timeNow()))
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

// @Summary		Get monthly series
// @Description	Returns income, expenses and savings rate per calendar month, oldest first and ending with the current month
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	MonthSeriesResponse
// @Failure		400	{object}	MonthSeriesResponse
// @Failure		401	{object}	MonthSeriesResponse
// @Failure		500	{object}	MonthSeriesResponse
// @Param			months	query	int	false	"Number of months to return. Defaults to 6, at most 24."
// @Router			/v1/stats/monthly [get]
func GetMonthSeries(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthSeriesResponse{
			Error: &e,
		})
		return
	}

	var query struct {
		Months int `form:"months,default=6"`
	}
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthSeriesResponse{
			Error: &e,
		})
		return
	}

	if query.Months < 1 || query.Months > 24 {
		e := errMonthCountInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthSeriesResponse{
			Error: &e,
		})
		return
	}

	transactions, err := models.UserTransactions(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthSeriesResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthBucket, 0, query.Months)
	for _, bucket := range stats.GroupByMonth(transactions, query.Months, timeNow()) {
		data = append(data, newMonthBucket(bucket))
	}

	c.JSON(http.StatusOK, MonthSeriesResponse{Data: data})
}

// @Summary		Get daily series
// @Description	Returns income and expenses per day for the requested range ending today. Days without transactions are included with zero values.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	DaySeriesResponse
// @Failure		400	{object}	DaySeriesResponse
// @Failure		401	{object}	DaySeriesResponse
// @Failure		500	{object}	DaySeriesResponse
// @Param			days	query	int	false	"Number of days to look back. Defaults to 30, at most 366. The response contains one extra bucket for today."
// @Router			/v1/stats/daily [get]
func GetDaySeries(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DaySeriesResponse{
			Error: &e,
		})
		return
	}

	var query struct {
		Days int `form:"days,default=30"`
	}
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DaySeriesResponse{
			Error: &e,
		})
		return
	}

	if query.Days < 1 || query.Days > 366 {
		e := errDayCountInvalid.Error()
		c.JSON(http.StatusBadRequest, DaySeriesResponse{
			Error: &e,
		})
		return
	}

	transactions, err := models.UserTransactions(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DaySeriesResponse{
			Error: &e,
		})
		return
	}

	data := make([]DayBucket, 0, query.Days+1)
	for _, bucket := range stats.GroupByDay(transactions, query.Days, timeNow()) {
		data = append(data, newDayBucket(bucket))
	}

	c.JSON(http.StatusOK, DaySeriesResponse{Data: data})
}
