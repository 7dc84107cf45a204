package api

import (
	"net/http"
	"strings"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"boscoin.io/sebak-gov/lib/api/resource"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/metrics"
	"boscoin.io/sebak-gov/lib/registry"
)

// API Endpoint patterns, under `resource.APIPrefix` + `resource.APIVersionV1`
const (
	GetProposalsHandlerPattern        = "/proposals"
	GetProposalHandlerPattern         = "/proposals/{id}"
	GetProposalTallyHandlerPattern    = "/proposals/{id}/tallies/{stage}"
	GetProposalVotesHandlerPattern    = "/proposals/{id}/votes/{stage}"
	GetExpiredProposalsHandlerPattern = "/expired-proposals"
	GetCitizensHandlerPattern         = "/citizens"
	GetCitizenHandlerPattern          = "/citizens/{id}"
	GetMembersHandlerPattern          = "/members"
)

// GovernanceHandlerAPI serves the read only view of the governance state;
// it never calls the mutating operations of `governance.Engine`.
type GovernanceHandlerAPI struct {
	engine *governance.Engine
	roll   *registry.CitizenRoll
}

func NewGovernanceHandlerAPI(engine *governance.Engine, roll *registry.CitizenRoll) *GovernanceHandlerAPI {
	return &GovernanceHandlerAPI{engine: engine, roll: roll}
}

func (api GovernanceHandlerAPI) HandlerURLPattern(pattern string) string {
	return resource.APIPrefix + resource.APIVersionV1 + pattern
}

// Router registers the handlers; the citizen endpoints are skipped without
// `registry.CitizenRoll`.
func (api GovernanceHandlerAPI) Router(router *mux.Router) *mux.Router {
	if router == nil {
		router = mux.NewRouter()
	}

	handle := func(pattern string, handler http.HandlerFunc) {
		router.HandleFunc(
			api.HandlerURLPattern(pattern),
			ObserveHandler(pattern, handler),
		).Methods("GET")
	}

	handle(GetProposalsHandlerPattern, api.GetProposalsHandler)
	handle(GetProposalHandlerPattern, api.GetProposalHandler)
	handle(GetProposalTallyHandlerPattern, api.GetProposalTallyHandler)
	handle(GetProposalVotesHandlerPattern, api.GetProposalVotesHandler)
	handle(GetExpiredProposalsHandlerPattern, api.GetExpiredProposalsHandler)
	handle(GetMembersHandlerPattern, api.GetMembersHandler)

	if api.roll != nil {
		handle(GetCitizensHandlerPattern, api.GetCitizensHandler)
		handle(GetCitizenHandlerPattern, api.GetCitizenHandler)
	}

	return router
}

// CORS allows the read requests from any origin.
func CORS(handler http.Handler) http.Handler {
	allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
	allowedMethods := ghandlers.AllowedMethods([]string{"GET"})
	allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control"})

	return ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders)(handler)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// ObserveHandler records the request to `metrics.API`.
func ObserveHandler(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		handler(recorder, r)

		metrics.API.ObserveRequest(strings.TrimPrefix(endpoint, "/"), r.Method, recorder.status, begin)
		log.Debug("request", "method", r.Method, "url", r.URL.String(), "status", recorder.status, "elapsed", time.Since(begin))
	}
}
