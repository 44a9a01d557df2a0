package controller

import (
	"log/slog"
	"net/http"

	"github.com/ThomasMo54/teaching-shop-example/message"
)

type Hook[F any] struct {
	names []string
	Funcs []F
}

// Add registers the function under a name so it can be replaced later.
// Adding an existing name overwrites its function in place.
func (h *Hook[F]) Add(name string, fn F) {
	for i, n := range h.names {
		if n == name {
			h.Funcs[i] = fn
			return
		}
	}
	h.names = append(h.names, name)
	h.Funcs = append(h.Funcs, fn)
}

type AbortWithErrorHook struct {
	Hook[func(http.ResponseWriter, *http.Request, error)]
}

func (h *AbortWithErrorHook) Run(w http.ResponseWriter, r *http.Request, err error) {
	for _, fn := range h.Funcs {
		fn(w, r, err)
	}
}

type OnRecoverHook struct {
	Hook[func(http.ResponseWriter, *http.Request, string)]
}

func (h *OnRecoverHook) Run(w http.ResponseWriter, r *http.Request, err string) {
	for _, fn := range h.Funcs {
		fn(w, r, err)
	}
}

type ControllerHooks struct {
	AbortWithError AbortWithErrorHook
	OnRecover      OnRecoverHook
}

var Hooks = ControllerHooks{}

func init() {
	Hooks.AbortWithError.Add("default", func(w http.ResponseWriter, r *http.Request, err error) {
		if msg, ok := err.(message.Message); ok {
			msg.Write(w, r)
		} else {
			slog.Error("unhandled controller error", slog.Any("error", err))
			message.InternalServerError(r).Write(w, r)
		}
	})
	Hooks.OnRecover.Add("default", func(w http.ResponseWriter, r *http.Request, err string) {
		slog.Error("recovered panic", slog.String("stack", err))
		message.InternalServerError(r).Write(w, r)
	})
}
