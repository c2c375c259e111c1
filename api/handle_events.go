package api

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/usecases/events"
)

// handleChangeStream pushes change notifications to the dashboard over
// server-sent events. Events carry only the table name; clients re-fetch
// the collections they display.
func handleChangeStream(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ch, unsubscribe := uc.Notifier.Subscribe(events.AllTables)
		defer unsubscribe()

		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.SSEvent("ready", gin.H{})

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case event, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent("change", gin.H{"table": event.Table})
				return true
			}
		})
	}
}
