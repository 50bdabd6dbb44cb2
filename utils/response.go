package utils

import (
	"encoding/json"
	"net/http"

	"github.com/zosjobs/jobs-gateway/models/common"
)

// StatusResponse Writes the status as JSON with the status code as HTTP status
func StatusResponse(w http.ResponseWriter, status *common.Status) {
	body, err := json.Marshal(status)
	if err != nil {
		WriteResponse(w, http.StatusInternalServerError)
		return
	}

	code := status.Code
	if code == 0 {
		code = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func WriteResponse(w http.ResponseWriter, statusCode int, response ...string) {
	w.WriteHeader(statusCode)
	for _, responseText := range response {
		_, _ = w.Write([]byte(responseText))
	}
}
