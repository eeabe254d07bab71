package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWSStreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	r := gin.New()
	r.GET("/realtime/products", ServeWS(hub, "products"))

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/realtime/products"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers("products") == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(Event{Type: Update, Table: "products", New: json.RawMessage(`{"id":"p1"}`)})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, Update, got.Type)
	assert.Equal(t, "p1", got.NewID())

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Subscribers("products") == 0 }, 2*time.Second, 10*time.Millisecond)
}
