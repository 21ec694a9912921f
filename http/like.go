package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirper/domain"
	"chirper/errs"
)

// registerLikeRoutes is a helper for registering all Like routes.
func (s *Server) registerLikeRoutes(r *mux.Router) {
	// Create a new like for a tweet (Like a tweet).
	r.HandleFunc("/tweets/{id:[0-9]+}/likes", s.requireAuth(s.handleCreateLike)).Methods("POST")

	// Delete an existing like of a tweet (Unlike a tweet).
	r.HandleFunc("/tweets/{id:[0-9]+}/likes", s.requireAuth(s.handleDeleteLike)).Methods("DELETE")
}

// handleCreateLike handles the route "POST /api/tweets/{id}/likes".
// A like that already exists is suppressed, not an error: the reply keeps the
// success status and just flips the result to false.
func (s *Server) handleCreateLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	like := domain.Like{
		TweetID: id,
		UserID:  user.ID,
	}

	if err := s.ls.Create(&like); err != nil {
		switch errs.ErrorCode(err) {
		case errs.ECONFLICT, errs.ENOTFOUND:
			s.writeJSON(w, r, http.StatusCreated, resultResponse{Result: false})
		default:
			errs.ReturnError(w, r, err)
		}
		return
	}

	s.writeJSON(w, r, http.StatusCreated, resultResponse{Result: true})
}

// handleDeleteLike handles the route "DELETE /api/tweets/{id}/likes".
// Unliking a tweet the user never liked is a safe no-op with a false result.
func (s *Server) handleDeleteLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	like := domain.Like{
		TweetID: id,
		UserID:  user.ID,
	}

	if err := s.ls.Delete(&like); err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			s.writeJSON(w, r, http.StatusOK, resultResponse{Result: false})
		} else {
			errs.ReturnError(w, r, err)
		}
		return
	}

	s.writeJSON(w, r, http.StatusOK, resultResponse{Result: true})
}
