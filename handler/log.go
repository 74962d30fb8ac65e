package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func logRequest(log logrus.FieldLogger, req *http.Request, status int) {
	log.Infof("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, req.URL.Path, status)
}

// logAndReturnError logs the cause and answers with a generic message. The cause never reaches the client.
func logAndReturnError(w http.ResponseWriter, req *http.Request, log logrus.FieldLogger, httpResponseStr string, code int, err error) {
	log.WithError(err).Errorf("%s -- %s -- %s -- %s", req.RemoteAddr, req.Method, req.URL.Path, httpResponseStr)
	http.Error(w, httpResponseStr, code)
}
