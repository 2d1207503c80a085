// Package controllers holds the gin handlers for the Ketpa booking backend.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/FlixonCoder/Ketpa-backend/configuration"
	"github.com/FlixonCoder/Ketpa-backend/mailer"
)

// Server bundles the collaborators the handlers need. Everything is injected
// from main so tests can swap in an in-memory database and a fake mailer.
type Server struct {
	DB     *gorm.DB
	Mail   mailer.Sender
	Cache  *redis.Client // nil means the doctor-directory cache is disabled
	Config configuration.Config
}

func New(db *gorm.DB, mail mailer.Sender, cache *redis.Client, cfg configuration.Config) *Server {
	return &Server{DB: db, Mail: mail, Cache: cache, Config: cfg}
}

// fail writes the uniform failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// storageFail hides storage errors behind a generic message.
func storageFail(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Something went wrong, please try again")
}
