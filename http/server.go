package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"chirper/crud"
	"chirper/domain"
)

// Server provides the http functionality of this app, namely routing, request
// handling, and middleware. It resolves the caller's api key and checks
// authorization before handing things over to one of the crud services.
type Server struct {
	router *mux.Router
	log    *zap.Logger
	us     domain.UserService
	ts     domain.TweetService
	ms     domain.MediaService
	fs     domain.FollowService
	ls     domain.LikeService
	feed   domain.FeedService
}

// NewServer returns a new instance of the server, registers all necessary
// routes and gives their handlers access to the app services passed in.
func NewServer(
	log *zap.Logger,
	us *crud.UserService,
	ts *crud.TweetService,
	ms *crud.MediaService,
	fs *crud.FollowService,
	ls *crud.LikeService,
	feed *crud.FeedService,
) *Server {

	// Construct a new Server with a gorilla router and the services passed in.
	s := &Server{
		router: mux.NewRouter(),
		log:    log,
		us:     us,
		ts:     ts,
		ms:     ms,
		fs:     fs,
		ls:     ls,
		feed:   feed,
	}

	// Register the api routes.
	api := s.router.PathPrefix("/api").Subrouter()
	s.registerTweetRoutes(api)
	s.registerMediaRoutes(api)
	s.registerLikeRoutes(api)
	s.registerFollowRoutes(api)
	s.registerUserRoutes(api)

	// Set up middleware that needs to run on every request.
	s.router.Use(s.logRequest, s.checkUser)
	return s
}

// ServeHTTP makes the Server usable anywhere an http.Handler is expected,
// most notably in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// The logRequest middleware tags every request with an id and logs it.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// resultResponse is the minimal reply body: just the operation's outcome.
// A false result is not an error; it means "nothing happened", e.g. a
// duplicate like that was suppressed.
type resultResponse struct {
	Result bool `json:"result"`
}

// writeJSON renders a response body with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

// Run starts to listen and serve on the specified port.
func (s *Server) Run(port int) error {
	s.log.Info("listening", zap.Int("port", port))
	return http.ListenAndServe(":"+strconv.Itoa(port), s.router)
}
