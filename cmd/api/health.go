package main

import (
	"net/http"
)

const homePage = "<h3>This api receives JSON product reviews and ratings, and stores them in a PostgreSQL database.<h3>"

// homeHandler godoc
//
//	@Summary		Home page
//	@Description	Static description of the service.
//	@Tags			ops
//	@Produce		html
//	@Success		200	{string}	string	"HTML"
//	@Router			/ [get]
func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(homePage))
}

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service version and whether the database answers a ping.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	status := http.StatusOK
	if err := app.pinger.Ping(r.Context()); err != nil {
		app.logger.Errorw("database ping failed", "error", err.Error())
		data["status"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if err := writeJSON(w, status, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
