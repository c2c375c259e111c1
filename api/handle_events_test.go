package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/usecases/events"
)

// closeNotifyingRecorder makes httptest's recorder usable with gin's
// Stream, which requires http.CloseNotifier.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestHandleChangeStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := usecases.Usecases{Notifier: events.NewNotifier()}
	r := gin.New()
	r.GET("/events", handleChangeStream(uc))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	w := newCloseNotifyingRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(w, req)
	}()

	// The subscription happens inside the handler, so keep publishing
	// until we hang up; at least one event lands after it.
	for i := 0; i < 50; i++ {
		uc.Notifier.Publish(ctx, models.ChangeEvent{Table: "automations", Op: models.ChangeUpdate})
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, "event:ready")
	assert.Contains(t, body, "event:change")
	assert.Contains(t, body, `{"table":"automations"}`)
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
}
