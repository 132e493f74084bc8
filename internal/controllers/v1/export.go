package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/gargantua-app/backend/internal/httputil"
	"github.com/gargantua-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var backendVersion string

// RegisterExportRoutes registers the routes for the export with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)
	}
}

type ExportResponse struct {
	Version      string                     `json:"version" example:"1.2.0"`                  // The backend version the export was created with
	Data         map[string]json.RawMessage `json:"data"`                                     // The exported resources, keyed by model name
	CreationTime time.Time                  `json:"creationTime" example:"2024-03-15T08:30:00Z"` // Time the export was created
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources for the instance as a backup
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		Data:         resources,
		CreationTime: time.Now(),
	})
}
