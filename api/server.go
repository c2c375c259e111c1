package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/usecases"
)

type Configuration struct {
	Host           string
	Port           string
	RequestTimeout time.Duration
}

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, auth Authentication) *http.Server {
	addRoutes(router, auth, uc)

	timeout := conf.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%s", conf.Host, conf.Port),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  timeout,
		Handler:      router,
	}
}
