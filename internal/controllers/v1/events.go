package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gargantua-app/backend/internal/events"
	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Tables referenced in change events.
const (
	tableTransactions       = "transactions"
	tableWishlistItems      = "wishlist_items"
	tableInvestmentSettings = "investment_settings"
)

// broker distributes change events to the websocket subscribers.
var broker = events.NewBroker()

var upgrader = websocket.Upgrader{
	// Browsers enforce the origin of the websocket handshake, but the
	// frontend is served from configurable origins. CORS applies to the
	// rest of the API, the feed itself carries no credentials beyond
	// the proxy headers.
	CheckOrigin: func(*http.Request) bool { return true },
}

// RegisterEventRoutes registers the routes for the change feed with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup) {
	r.GET("", GetEvents)
}

// @Summary		Change feed
// @Description	Upgrades the connection to a websocket that streams change events for the current user's data as JSON
// @Tags			Events
// @Success		101
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Router			/v1/events [get]
func GetEvents(c *gin.Context) {
	user, err := identity.FromContext(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}

	feed, cancel := broker.Subscribe(user.ID)
	defer cancel()
	defer conn.Close()

	// Reads only serve to detect a closed connection, clients do not
	// send messages on the feed
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-feed:
			if !ok {
				return
			}

			if err := conn.WriteJSON(event); err != nil {
				log.Debug().Err(err).Str("user", user.ID.String()).Msg("event feed closed")
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func publish(userID uuid.UUID, eventType events.EventType, table string, id uuid.UUID, payload any) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("marshalling event payload failed")
			return
		}
	}

	broker.Publish(userID, events.Event{
		Type:    eventType,
		Table:   table,
		ID:      id,
		Payload: raw,
	})
}

func publishInsert(userID uuid.UUID, table string, id uuid.UUID, payload any) {
	publish(userID, events.EventInsert, table, id, payload)
}

func publishUpdate(userID uuid.UUID, table string, id uuid.UUID, payload any) {
	publish(userID, events.EventUpdate, table, id, payload)
}

func publishDelete(userID uuid.UUID, table string, id uuid.UUID) {
	publish(userID, events.EventDelete, table, id, nil)
}
