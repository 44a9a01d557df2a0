package controller

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/ThomasMo54/teaching-shop-example/message"

	"github.com/go-chi/chi"
	"gorm.io/gorm/schema"
)

// PathPrimaries reads the primary key path parameters of the request and
// returns them as a where-condition map keyed by database column name.
func PathPrimaries(r *http.Request, sch *schema.Schema) (map[string]interface{}, error) {
	primaries := map[string]interface{}{}
	for _, field := range sch.PrimaryFields {
		raw := chi.URLParam(r, field.Name)
		if len(raw) == 0 {
			return nil, message.InvalidUrlParameter(r, field.Name)
		}
		val, msg := parseFieldValue(r, field, raw)
		if msg != nil {
			return nil, msg
		}
		primaries[field.DBName] = val
	}
	return primaries, nil
}

func parseFieldValue(r *http.Request, field *schema.Field, raw string) (interface{}, message.Message) {
	typ := field.FieldType
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, message.InvalidParamType(r, field.Name, "int")
		}
		return val, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, message.InvalidParamType(r, field.Name, "uint")
		}
		return val, nil
	case reflect.String:
		return raw, nil
	default:
		return nil, message.UnsupportedParamType(r, typ.Name())
	}
}

// PrimaryFieldsToURL renders the primary key fields of a schema as a chi
// route suffix, e.g. "/{ID}".
func PrimaryFieldsToURL(sch *schema.Schema) string {
	params := ""
	for _, field := range sch.PrimaryFields {
		params += "/{" + field.Name + "}"
	}
	return params
}
