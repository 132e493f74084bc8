package v1

import (
	"net/http"

	"github.com/gargantua-app/backend/internal/httputil"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/recurring"
	"github.com/gin-gonic/gin"
)

// RegisterRecurringRoutes registers the routes for the recurring
// transaction check with the RouterGroup that is passed.
func RegisterRecurringRoutes(r *gin.RouterGroup) {
	check := r.Group("/check")
	{
		check.OPTIONS("", OptionsRecurringCheck)
		check.POST("", RecurringCheck)
	}
}

type RecurringCheckResponse struct {
	Error *string              `json:"error" example:"there is no user for this request"` // The error, if any occurred
	Data  *RecurringCheckResult `json:"data"`                                             // The result of the check
}

type RecurringCheckResult struct {
	Created int  `json:"created" example:"2"`  // Number of transactions materialized by this check
	Skipped bool `json:"skipped" example:"false"` // True when the check was throttled and did not run
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring
// @Success		204
// @Router			/v1/recurring/check [options]
func OptionsRecurringCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Run recurring check
// @Description	Materializes the due copies of the current user's recurring transactions. The check runs at most once per half hour, a throttled call reports skipped. Internal errors never fail the check, it reports zero created transactions instead.
// @Tags			Recurring
// @Produce		json
// @Success		200	{object}	RecurringCheckResponse
// @Failure		401	{object}	RecurringCheckResponse
// @Router			/v1/recurring/check [post]
func RecurringCheck(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringCheckResponse{
			Error: &e,
		})
		return
	}

	materializer := recurring.Materializer{Now: timeNow}
	created, ran := materializer.Run(user.ID)

	for _, transaction := range created {
		publishInsert(user.ID, tableTransactions, transaction.ID, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, RecurringCheckResponse{
		Data: &RecurringCheckResult{
			Created: len(created),
			Skipped: !ran,
		},
	})
}
