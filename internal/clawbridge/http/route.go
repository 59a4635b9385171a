package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjzar/clawbridge/internal/errors"
)

func (s *Service) initRouter() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/send", s.handleSend)
	s.router.NoRoute(s.NoRoute)
}

// NoRoute answers unknown paths with a JSON 404.
func (s *Service) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SendRequest is the body of POST /send. Message presence is required but an
// empty string is allowed, hence the pointer binding. Group is optional and
// falls back to the configured default group.
type SendRequest struct {
	Message *string `json:"message" binding:"required"`
	Group   string  `json:"group"`
}

func (s *Service) handleSend(c *gin.Context) {

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.Err(c, errors.InvalidSendRequest(err))
		return
	}

	jid, err := s.groups.Resolve(req.Group)
	if err != nil {
		errors.Err(c, err)
		return
	}

	file, err := s.ipc.Send(jid, *req.Message)
	if err != nil {
		errors.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "file": file})
}
