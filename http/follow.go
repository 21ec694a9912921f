package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirper/domain"
	"chirper/errs"
)

// registerFollowRoutes is a helper for registering all Follow routes.
func (s *Server) registerFollowRoutes(r *mux.Router) {
	// Follow a user.
	r.HandleFunc("/users/{id:[0-9]+}/follow", s.requireAuth(s.handleCreateFollow)).Methods("POST")

	// Unfollow a user.
	r.HandleFunc("/users/{id:[0-9]+}/follow", s.requireAuth(s.handleDeleteFollow)).Methods("DELETE")
}

// handleCreateFollow handles the route "POST /api/users/{id}/follow".
// Duplicate follows and self-follows are suppressed into a false result with
// the success status, same as duplicate likes.
func (s *Server) handleCreateFollow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	follow := domain.Follow{
		FollowerID:  user.ID,
		FollowingID: id,
	}

	if err := s.fs.Create(&follow); err != nil {
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

// handleDeleteFollow handles the route "DELETE /api/users/{id}/follow".
// Unfollowing a user the caller doesn't follow is a safe no-op with a false
// result.
func (s *Server) handleDeleteFollow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	follow := domain.Follow{
		FollowerID:  user.ID,
		FollowingID: id,
	}

	if err := s.fs.Delete(&follow); err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			s.writeJSON(w, r, http.StatusOK, resultResponse{Result: false})
		} else {
			errs.ReturnError(w, r, err)
		}
		return
	}

	s.writeJSON(w, r, http.StatusOK, resultResponse{Result: true})
}
