package http

import "net/http"

const welcomeText = "Welcome to the Shop API!"

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(welcomeText))
}
