package router

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/outlet-analytics-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares aplicados só nesta rota
}

type Router struct {
	router *httprouter.Router
	routes map[string]struct{}
}

type ConfigRouter func(router *Router)

// New cria o router com respostas JSON para rota inexistente e método não permitido
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
		routes: map[string]struct{}{},
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, fmt.Sprintf("Rota não encontrada: %s", r.URL.Path), nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, fmt.Sprintf("Método %s não permitido", r.Method), nil)
	})
	// OPTIONS fica com o middleware de CORS
	router.router.HandleOPTIONS = false

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas com seus middlewares. Rota repetida é erro de
// programação e causa panic na inicialização.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		key := route.Method + " " + route.Path
		if _, exists := r.routes[key]; exists {
			panic(fmt.Sprintf("rota duplicada: %s", key))
		}
		r.routes[key] = struct{}{}

		var handler http.Handler = route.Handler

		// do último para o primeiro, assim o primeiro da lista roda antes
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

// Routes lista as rotas registradas no formato "METHOD /path", ordenadas
func (r Router) Routes() []string {
	keys := make([]string, 0, len(r.routes))
	for key := range r.routes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
