package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/qri-io/apiutil"
	"github.com/sirupsen/logrus"

	"github.com/agent-trust/registry/identity"
	"github.com/agent-trust/registry/registry"
	"github.com/agent-trust/registry/version"
)

var (
	// logger
	log = logrus.New()
)

// SetLogLevel controls how detailed handler logging is
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func logReq(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Infof("%s %s %s", time.Now().Format(time.RFC3339), r.Method, r.URL.Path)
		switch r.Method {
		case "GET":
			h.ServeHTTP(w, r)
		default:
			// the registry is read-only over http
			apiutil.NotFoundHandler(w, r)
		}
	}
}

// HealthCheckHandler is a basic "hey I'm fine" for load balancers & co
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"meta":{"code": 200,"status":"ok"},"data":null}`))
}

// NewInfoHandler creates a protocol metadata handler: static protocol
// details plus the size of the current snapshot
func NewInfoHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := reg.Snapshot()
		apiutil.WriteResponse(w, map[string]interface{}{
			"atp":           identity.DefaultATPVersion,
			"service":       "registry",
			"version":       version.Version,
			"identityCount": len(snap.Identities),
		})
	}
}

type listResponse struct {
	Total   int                 `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
	Results []*identity.Summary `json:"results"`
}

// NewListHandler creates a paginated identity listing handler
func NewListHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// odd values default to 0, the engine clamps from there
		limit, _ := apiutil.ReqParamInt("limit", r)
		offset, _ := apiutil.ReqParamInt("offset", r)

		total, page := reg.Snapshot().List(limit, offset)
		apiutil.WriteResponse(w, listResponse{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			Results: page,
		})
	}
}

type searchResponse struct {
	Query   string              `json:"query"`
	Count   int                 `json:"count"`
	Results []*identity.Summary `json:"results"`
}

// NewSearchHandler creates a substring search handler
func NewSearchHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.FormValue("q")
		limit, _ := apiutil.ReqParamInt("limit", r)

		results, err := reg.Snapshot().Search(q, limit)
		if err != nil {
			apiutil.WriteErrResponse(w, http.StatusBadRequest, err)
			return
		}
		apiutil.WriteResponse(w, searchResponse{
			Query:   q,
			Count:   len(results),
			Results: results,
		})
	}
}

// NewStatsHandler creates an aggregate counts handler
func NewStatsHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiutil.WriteResponse(w, reg.Snapshot().Stats())
	}
}

// NewFingerprintHandler creates a point lookup handler for full or
// short-form gpg fingerprints
func NewFingerprintHandler(prefix string, reg *registry.Registry) http.HandlerFunc {
	return keyedLookupHandler(prefix, "fingerprint", reg, (*registry.Snapshot).ByFingerprint)
}

// NewNameHandler creates a point lookup handler for display names
func NewNameHandler(prefix string, reg *registry.Registry) http.HandlerFunc {
	return keyedLookupHandler(prefix, "name", reg, (*registry.Snapshot).ByName)
}

// NewWalletHandler creates a point lookup handler for wallet addresses
func NewWalletHandler(prefix string, reg *registry.Registry) http.HandlerFunc {
	return keyedLookupHandler(prefix, "wallet address", reg, (*registry.Snapshot).ByWallet)
}

// NewPlatformHandler creates a point lookup handler for platform handles.
// the path carries two segments: platform & handle. an unknown platform 404s
// with the list of known platforms attached
func NewPlatformHandler(prefix string, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, prefix), "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			apiutil.WriteErrResponse(w, http.StatusBadRequest, fmt.Errorf("platform lookups require a platform & handle: %s{platform}/{handle}", prefix))
			return
		}

		id, err := reg.Snapshot().ByPlatform(parts[0], parts[1])
		if err != nil {
			var upe registry.UnknownPlatformError
			if errors.As(err, &upe) {
				writeUnknownPlatform(w, upe)
				return
			}
			apiutil.WriteErrResponse(w, http.StatusNotFound, err)
			return
		}
		apiutil.WriteResponse(w, id)
	}
}

// keyedLookupHandler serves single-key point lookups. the snapshot is loaded
// once per request, so one request reads exactly one snapshot
func keyedLookupHandler(prefix, kind string, reg *registry.Registry, lookup func(*registry.Snapshot, string) (*identity.Identity, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, prefix)
		if key == "" {
			apiutil.WriteErrResponse(w, http.StatusBadRequest, fmt.Errorf("no %s given", kind))
			return
		}
		id, err := lookup(reg.Snapshot(), key)
		if err != nil {
			apiutil.WriteErrResponse(w, http.StatusNotFound, err)
			return
		}
		apiutil.WriteResponse(w, id)
	}
}

func writeUnknownPlatform(w http.ResponseWriter, upe registry.UnknownPlatformError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"meta": map[string]interface{}{
			"code":  http.StatusNotFound,
			"error": upe.Error(),
		},
		"data": map[string]interface{}{
			"platform":       upe.Platform,
			"knownPlatforms": upe.Known,
		},
	})
}
