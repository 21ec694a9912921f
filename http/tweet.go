package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chirper/domain"
	"chirper/errs"
)

// registerTweetRoutes is a helper for registering all Tweet routes.
func (s *Server) registerTweetRoutes(r *mux.Router) {
	// Create a new tweet.
	r.HandleFunc("/tweets", s.requireAuth(s.handleCreateTweet)).Methods("POST")

	// Get the timeline of the authed user.
	r.HandleFunc("/tweets", s.requireAuth(s.handleGetTimeline)).Methods("GET")

	// Delete an existing tweet.
	r.HandleFunc("/tweets/{id:[0-9]+}", s.requireAuth(s.handleDeleteTweet)).Methods("DELETE")
}

// createTweetRequest is the json body of a tweet creation: the content and
// the ids of media uploaded beforehand, in display order.
type createTweetRequest struct {
	TweetData     string `json:"tweet_data"`
	TweetMediaIDs []int  `json:"tweet_media_ids"`
}

// createTweetResponse carries the id of the created tweet.
type createTweetResponse struct {
	Result  bool `json:"result"`
	TweetID int  `json:"tweet_id"`
}

// timelineResponse carries the tweets of the caller's feed.
type timelineResponse struct {
	Result bool               `json:"result"`
	Tweets []domain.TweetView `json:"tweets"`
}

// handleCreateTweet handles the route "POST /api/tweets".
// It creates a tweet authored by the authed user and claims the listed media
// for it. Every call creates a new tweet; identical content is not deduped.
func (s *Server) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	var req createTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid json body."))
		return
	}

	user := s.getUserFromContext(r.Context())
	tweet := domain.Tweet{
		UserID:   user.ID,
		Content:  req.TweetData,
		MediaIDs: req.TweetMediaIDs,
	}

	if err := s.ts.Create(&tweet); err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, createTweetResponse{
		Result:  true,
		TweetID: tweet.ID,
	})
}

// handleDeleteTweet handles the route "DELETE /api/tweets/{id}".
// A missing tweet and a foreign tweet both render {result:false}; they only
// differ in the status code (200 vs 403) so clients can tell "nothing to
// delete" from "not allowed".
func (s *Server) handleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		errs.ReturnError(w, r, errs.Errorf(errs.EINVALID, "Invalid Id format."))
		return
	}

	user := s.getUserFromContext(r.Context())
	tweet := domain.Tweet{
		ID:     id,
		UserID: user.ID,
	}

	if err := s.ts.Delete(&tweet); err != nil {
		switch errs.ErrorCode(err) {
		case errs.ENOTFOUND:
			s.writeJSON(w, r, http.StatusOK, resultResponse{Result: false})
		case errs.EUNAUTHORIZED:
			s.writeJSON(w, r, http.StatusForbidden, resultResponse{Result: false})
		default:
			errs.ReturnError(w, r, err)
		}
		return
	}

	s.writeJSON(w, r, http.StatusOK, resultResponse{Result: true})
}

// handleGetTimeline handles the route "GET /api/tweets".
// It returns the tweets of the authed user's feed.
func (s *Server) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	user := s.getUserFromContext(r.Context())

	tweets, err := s.feed.TimelineFor(user)
	if err != nil {
		errs.ReturnError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, timelineResponse{
		Result: true,
		Tweets: tweets,
	})
}
