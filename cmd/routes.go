package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authChain := standardMiddleware.Append(app.requireUser)
	openChain := standardMiddleware.Append(app.identifyUser)

	mux := pat.New()

	// static paths before the :id wildcard so pat matches them first
	mux.Get("/discovery/nearby", openChain.ThenFunc(app.discoveryHandler.SearchNearby))
	mux.Get("/discovery/favorites", authChain.ThenFunc(app.favoritesHandler.ListFavorites))
	mux.Post("/discovery/:id/favorite", authChain.ThenFunc(app.favoritesHandler.ToggleFavorite))
	mux.Get("/discovery/:id", openChain.ThenFunc(app.discoveryHandler.GetProfile))

	return mux
}
