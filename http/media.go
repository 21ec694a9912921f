package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirper/domain"
	"chirper/errs"
)

// registerMediaRoutes is a helper for registering all Media routes.
func (s *Server) registerMediaRoutes(r *mux.Router) {
	// Upload a media file, unassociated with any tweet yet.
	r.HandleFunc("/medias", s.requireAuth(s.handleUploadMedia)).Methods("POST")

	// Serve a media file's raw bytes.
	r.HandleFunc("/medias/{id:[0-9]+}", s.handleGetMedia).Methods("GET")
}

// uploadMediaResponse carries the id of the stored media.
type uploadMediaResponse struct {
	Result  bool `json:"result"`
	MediaID int  `json:"media_id"`
}

// handleUploadMedia handles the route "POST /api/medias".
// It reads the "file" field from multipart form data and stores its bytes
// verbatim. The association with a tweet happens later, when a tweet is
// created referencing the returned id.
func (s *Server) handleUploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(domain.MaxUploadSize); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid multipart form data."))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "A file field is required."))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	media := domain.Media{
		File:        data,
		ContentType: header.Header.Get("Content-Type"),
	}
	if err := s.ms.Create(&media); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, uploadMediaResponse{
		Result:  true,
		MediaID: media.ID,
	})
}

// handleGetMedia handles the route "GET /api/medias/{id}".
// It serves the stored bytes unchanged, tagged with the content type sniffed
// at upload time. No range requests, no caching headers.
func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	media, err := s.ms.ByID(id)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", media.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(media.File); err != nil {
		errs.LogError(r, err)
	}
}
