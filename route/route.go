package route

import "net/http"

type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func New(method string, pattern string, handler http.HandlerFunc) Route {
	return Route{
		Method:  method,
		Pattern: pattern,
		Handler: handler,
	}
}

func Get(pattern string, handler http.HandlerFunc) Route {
	return New(http.MethodGet, pattern, handler)
}

func Post(pattern string, handler http.HandlerFunc) Route {
	return New(http.MethodPost, pattern, handler)
}

func Patch(pattern string, handler http.HandlerFunc) Route {
	return New(http.MethodPatch, pattern, handler)
}

func Delete(pattern string, handler http.HandlerFunc) Route {
	return New(http.MethodDelete, pattern, handler)
}
