package v1

import (
	"time"

	gg_uuid "github.com/gargantua-app/backend/internal/uuid"
)

// timeNow is replaced in tests.
var timeNow = func() time.Time { return time.Now().In(time.UTC) }

type URIID struct {
	ID gg_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Total  int64 `json:"total" example:"827"` // The total number of records matching the query
	Offset uint  `json:"offset" example:"0"`  // The offset for the first record returned
	Limit  int   `json:"limit" example:"50"`  // The maximum number of records returned
}
