package router

import "net/http"

type SessionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(sessionController SessionRouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	registerIndexRoute(mux)
	registerSwaggerRoutes(mux)

	if sessionController != nil {
		sessionController.RegisterRoutes(mux)
	}

	return mux
}
