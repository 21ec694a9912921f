package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirper/domain"
	"chirper/errs"
)

// registerUserRoutes is a helper for registering all User routes.
func (s *Server) registerUserRoutes(r *mux.Router) {
	// Get the profile of the authed user.
	r.HandleFunc("/users/me", s.requireAuth(s.handleGetOwnProfile)).Methods("GET")

	// Get the profile of any user by id.
	r.HandleFunc("/users/{id:[0-9]+}", s.handleGetProfile).Methods("GET")
}

// profileResponse carries a user's profile view.
type profileResponse struct {
	Result bool                `json:"result"`
	User   *domain.ProfileView `json:"user"`
}

// handleGetOwnProfile handles the route "GET /api/users/me".
// It resolves the caller from the api key and renders their profile.
func (s *Server) handleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	user := s.getUserFromContext(r.Context())

	profile, err := s.feed.ProfileFor(user.ID)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, profileResponse{
		Result: true,
		User:   profile,
	})
}

// handleGetProfile handles the route "GET /api/users/{id}".
// Profiles are public; the route requires no credential.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	profile, err := s.feed.ProfileFor(id)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, profileResponse{
		Result: true,
		User:   profile,
	})
}
