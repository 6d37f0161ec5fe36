package router

import (
	"net/http"

	"rentahome/internal/auth"
	"rentahome/internal/handlers"
	"rentahome/internal/models"
	"rentahome/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Config struct {
	BcryptCost  int
	CORSOrigins []string
}

func New(db storage.Database, cache storage.Cache, sessions *auth.SessionIssuer, verifier auth.Verifier, cfg Config) http.Handler {
	router := mux.NewRouter()

	authed := func(h http.Handler) http.Handler {
		return handlers.AuthorizationMiddleware(h, sessions)
	}
	adminOnly := func(h http.Handler) http.Handler {
		return authed(handlers.RequireRole(h, models.RoleAdmin))
	}

	router.Handle(`/auth/google`, handlers.GoogleLoginHandler(db, verifier, sessions, cfg.BcryptCost)).Methods(`POST`)
	router.Handle(`/auth/register`, handlers.RegisterHandler(db, sessions, cfg.BcryptCost)).Methods(`POST`)
	router.Handle(`/auth/login`, handlers.LoginHandler(db, sessions)).Methods(`POST`)
	router.Handle(`/auth/verify`, authed(handlers.VerifyHandler())).Methods(`GET`)

	router.Handle(`/properties`, handlers.PropertiesBrowseHandler(db, cache)).Methods(`GET`)
	router.Handle(`/properties`, authed(handlers.RequireRole(handlers.PropertyCreateHandler(db), models.RoleOwner, models.RoleAdmin))).Methods(`POST`)
	router.Handle(`/properties/{id}`, handlers.PropertyDetailHandler(db)).Methods(`GET`)
	router.Handle(`/properties/{id}`, authed(handlers.PropertyUpdateHandler(db, cache))).Methods(`PUT`)
	router.Handle(`/my/properties`, authed(handlers.MyPropertiesHandler(db))).Methods(`GET`)

	router.Handle(`/admin/properties/pending`, adminOnly(handlers.PendingPropertiesHandler(db))).Methods(`GET`)
	router.Handle(`/admin/properties/{id}/verify`, adminOnly(handlers.PropertyReviewHandler(db, cache))).Methods(`POST`)
	router.Handle(`/admin/users/{id}/suspend`, adminOnly(handlers.AccountSuspendHandler(db, true))).Methods(`POST`)
	router.Handle(`/admin/users/{id}/unsuspend`, adminOnly(handlers.AccountSuspendHandler(db, false))).Methods(`POST`)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{`GET`, `POST`, `DELETE`, `OPTIONS`, `PATCH`, `PUT`},
		AllowedHeaders:   []string{`Content-Type`, `Authorization`},
		AllowCredentials: true,
	}).Handler(router)

	return handler
}
