package api

import (
	"time"

	"github.com/sirupsen/logrus"

	"pda-backend/internal/db"
	"pda-backend/internal/services"
	"pda-backend/internal/storage"
)

const contextClaimsKey = "auth_claims"

// Handler carries the explicit dependencies shared by all routes; there
// is no ambient store client.
type Handler struct {
	repos     *db.Repositories
	auth      *services.AuthService
	uploads   *storage.UploadStore
	log       *logrus.Logger
	startedAt time.Time
}

func NewHandler(repos *db.Repositories, auth *services.AuthService, uploads *storage.UploadStore, log *logrus.Logger) *Handler {
	return &Handler{
		repos:     repos,
		auth:      auth,
		uploads:   uploads,
		log:       log,
		startedAt: time.Now(),
	}
}
