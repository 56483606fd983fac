package api

import (
	"net/http"
	"time"

	"github.com/defund/qrgen/qrimage"
)

type statusResponse struct {
	Content string `json:"content"`
	Version int    `json:"version"`
	Modules int    `json:"modules"`
	Size    int    `json:"size"`
	Uptime  string `json:"uptime"`
	Build   string `json:"build"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sym, err := qrimage.Encode(s.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Content: s.Content,
		Version: sym.Version,
		Modules: sym.Size(),
		Size:    (sym.Size() + 2*qrimage.Border) * qrimage.BoxSize,
		Uptime:  time.Since(s.Started).Truncate(time.Second).String(),
		Build:   s.Version,
	})
}
