package controllers

import (
	"net/http"

	"github.com/riftbounddb/backend/api/responses"
	"github.com/riftbounddb/backend/pkg/mongodb"
)

type healthBody struct {
	Status         string `json:"status"`
	MongoConnected bool   `json:"mongoConnected"`
}

// Health reports process liveness plus the current Mongo connection state.
// The endpoint always answers 200; a broken database only flips the flag.
func Health(pinger mongodb.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connected := false
		if pinger != nil {
			connected = pinger.Ping(r.Context()) == nil
		}
		responses.WriteSuccess(w, healthBody{Status: "ok", MongoConnected: connected})
	}
}

// Root answers the bare API origin so load balancer probes and curious
// browsers get something other than a 404.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status":  "ok",
			"message": "Riftbound API root",
		})
	}
}
