package controllers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type HealthCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheckHandler reports API liveness and database reachability. The
// endpoint itself always answers 200.
func HealthCheckHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthCheckResponse{
			Status:   "ok",
			Database: "ok",
		}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			response.Database = "unreachable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}
