package controllers

import (
	"net/http"

	"nutrifit/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	coachSvc = services.NewCoachService()
	Hub      = services.NewRealtimeHub()

	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// same-origin policy is the proxy's job in this deployment
		CheckOrigin: func(r *http.Request) bool { return true },
	}
)

func CoachMessage(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	category, reply := coachSvc.Reply(input.Message)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"category": category,
		"reply":    reply,
	}})
}

// CoachSocket upgrades to a websocket and answers each text frame with a
// canned coach reply through the hub, so replies also reach the user's
// other open tabs.
func CoachSocket(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	Hub.Register(client)
	defer Hub.Unregister(client)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		category, reply := coachSvc.Reply(string(msg))
		Hub.Send(userID, services.RealtimeEvent{
			Kind: "coach.reply",
			Payload: gin.H{
				"category": category,
				"reply":    reply,
			},
		})
	}
}
