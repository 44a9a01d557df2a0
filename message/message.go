package message

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Message interface {
	Text(string) Message
	ToMap() map[string]interface{}
	ToJSON() []byte
	Write(w http.ResponseWriter, r *http.Request)
	Error() string
	IsError() bool
	Is400() bool
	Is500() bool
	Set(key string, val interface{}) Message
	Get(key string) interface{}
	Add(errors ...error) Message
}

type Msg struct {
	Message    string
	Status     int
	Properties map[string]interface{}
}

func (m *Msg) Text(text string) Message {
	m.Message = text
	return m
}

func (m *Msg) ToMap() map[string]interface{} {
	mp := map[string]interface{}{"message": m.Message}
	for k, v := range m.Properties {
		mp[k] = v
	}
	return mp
}

func (m *Msg) ToJSON() []byte {
	val, _ := json.Marshal(m.ToMap())
	return val
}

func (m *Msg) Write(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(m.Status)
	w.Write(m.ToJSON()) //nolint:errcheck
}

func (m *Msg) Error() string {
	return m.Message
}

func (m *Msg) IsError() bool {
	return m.Is400() || m.Is500()
}

func (m *Msg) Is400() bool {
	return m.Status >= 400 && m.Status < 500
}

func (m *Msg) Is500() bool {
	return m.Status >= 500
}

func (m *Msg) Set(key string, val interface{}) Message {
	if m.Properties == nil {
		m.Properties = map[string]interface{}{}
	}
	m.Properties[key] = val
	return m
}

func (m *Msg) Get(key string) interface{} {
	if m.Properties == nil {
		return nil
	}
	return m.Properties[key]
}

func (m *Msg) Add(errors ...error) Message {
	for _, e := range errors {
		m.Message += "; " + e.Error()
	}
	return m
}

type i18nKey struct{}

// WithPrinter stores a request-scoped printer, set by whatever middleware
// negotiates the client language.
func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, i18nKey{}, p)
}

func GetPrinter(r *http.Request) *message.Printer {
	if r != nil {
		if p, ok := r.Context().Value(i18nKey{}).(*message.Printer); ok {
			return p
		}
	}
	return message.NewPrinter(language.BritishEnglish)
}

func FromError(status int, err error) Message {
	return &Msg{
		Message: err.Error(),
		Status:  status,
	}
}

func New(status int, text string) Message {
	return &Msg{
		Message: text,
		Status:  status,
	}
}
