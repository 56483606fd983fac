package api

import (
	"net/http"
	"strconv"
)

func (s *Server) handleQRImage(w http.ResponseWriter, r *http.Request) {
	res, err := s.Generator.Generate(s.Content)
	if err != nil {
		s.Log.Error("generate qr", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	w.Header().Set("Cache-Control", "max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(res.PNG)
}
