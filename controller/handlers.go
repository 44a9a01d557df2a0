package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/ThomasMo54/teaching-shop-example/app/dialectors"
	"github.com/ThomasMo54/teaching-shop-example/message"
	"github.com/ThomasMo54/teaching-shop-example/model"
	"github.com/ThomasMo54/teaching-shop-example/registry"
	"github.com/ThomasMo54/teaching-shop-example/response"

	"gorm.io/gorm"
)

func (a *AdminController) list(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		base := a.db.WithContext(r.Context()).Model(entry.Model)

		ord, err := a.orderClause(r, entry, q.Get("ord"))
		if AbortIfError(w, r, err) {
			return
		}

		var count int64
		if err := base.Session(&gorm.Session{}).Count(&count).Error; AbortIfError(w, r, err) {
			return
		}

		query := base.Session(&gorm.Session{}).Scopes(Paginate(q.Get("pagStart"), q.Get("pagEnd")))
		if ord != "" {
			query = query.Order(ord)
		}

		WriteCountHeaders(w, r, count)

		wantsCSV := strings.Contains(r.Header.Get("Accept"), "csv")
		if wantsCSV || q.Get("cols") == "1" {
			// Project the descriptor columns only, the summary the list
			// screen actually renders.
			rows := []map[string]interface{}{}
			if err := query.Select(entry.Columns()).Find(&rows).Error; AbortIfError(w, r, err) {
				return
			}
			if wantsCSV {
				AbortIfError(w, r, writeCSV(w, entry.Columns(), rows))
				return
			}
			response.JSON(w, r, rows)
			return
		}

		slice := reflect.New(reflect.SliceOf(entry.Schema.ModelType)).Interface()
		if err := query.Find(slice).Error; AbortIfError(w, r, err) {
			return
		}
		response.JSON(w, r, slice)
	}
}

func (a *AdminController) getOne(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		primaries, err := PathPrimaries(r, entry.Schema)
		if AbortIfError(w, r, err) {
			return
		}
		mdl := reflect.New(entry.Schema.ModelType).Interface()
		res := a.db.WithContext(r.Context()).Where(primaries).First(mdl)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			message.ItemNotFound(r).Write(w, r)
			return
		}
		if AbortIfError(w, r, res.Error) {
			return
		}
		response.JSON(w, r, mdl)
	}
}

func (a *AdminController) create(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonData, err := io.ReadAll(r.Body)
		if err != nil || len(jsonData) == 0 {
			message.InvalidJSON(r).Write(w, r)
			return
		}

		db := a.db.WithContext(r.Context()).Session(&gorm.Session{CreateBatchSize: 25})

		var mdl interface{}
		if jsonData[0] == '[' {
			mdl = reflect.New(reflect.SliceOf(entry.Schema.ModelType)).Interface()
			if AbortIfError(w, r, LoadModel(r, jsonData, mdl)) {
				return
			}
			if AbortIfError(w, r, ValidateModels(r, mdl)) {
				return
			}
		} else {
			mdl = reflect.New(entry.Schema.ModelType).Interface()
			if AbortIfError(w, r, LoadModel(r, jsonData, mdl)) {
				return
			}
			if AbortIfError(w, r, ValidateModel(r, mdl)) {
				return
			}
		}

		if err := db.Create(mdl).Error; err != nil {
			AbortWithError(w, r, a.exposeWriteErr(r, err))
			return
		}
		response.Created(w, r, mdl)
	}
}

func (a *AdminController) patchOne(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonData, err := io.ReadAll(r.Body)
		if err != nil || len(jsonData) == 0 {
			message.InvalidJSON(r).Write(w, r)
			return
		}

		jsonMap := map[string]interface{}{}
		if AbortIfError(w, r, LoadModel(r, jsonData, &jsonMap)) {
			return
		}
		values, err := ValidateUpdateMap(r, jsonMap, entry.Schema)
		if AbortIfError(w, r, err) {
			return
		}
		primaries, err := PathPrimaries(r, entry.Schema)
		if AbortIfError(w, r, err) {
			return
		}

		db := a.db.WithContext(r.Context())
		mdl := reflect.New(entry.Schema.ModelType).Interface()
		res := db.Model(mdl).Where(primaries).Updates(values)
		if res.Error != nil {
			AbortWithError(w, r, a.exposeWriteErr(r, res.Error))
			return
		}
		if res.RowsAffected == 0 {
			message.ItemNotFound(r).Write(w, r)
			return
		}
		if err := db.Where(primaries).First(mdl).Error; AbortIfError(w, r, err) {
			return
		}
		response.JSON(w, r, mdl)
	}
}

func (a *AdminController) delete(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		primaries, err := PathPrimaries(r, entry.Schema)
		if AbortIfError(w, r, err) {
			return
		}
		mdl := reflect.New(entry.Schema.ModelType).Interface()
		res := a.db.WithContext(r.Context()).Where(primaries).Delete(mdl)
		if res.Error != nil {
			AbortWithError(w, r, a.exposeWriteErr(r, res.Error))
			return
		}
		if res.RowsAffected == 0 {
			message.ItemNotFound(r).Write(w, r)
			return
		}
		response.NoContent(w)
	}
}

func (a *AdminController) structure(entry *registry.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, a.structInfo(entry))
	}
}

func (a *AdminController) orderClause(r *http.Request, entry *registry.Entry, ord string) (string, error) {
	if ord == "" {
		if m, ok := entry.Model.(model.OrderedModel); ok {
			return m.DefaultOrder(), nil
		}
		if len(entry.Schema.PrimaryFieldDBNames) > 0 {
			return entry.Schema.PrimaryFieldDBNames[0], nil
		}
		return "", nil
	}
	desc := strings.HasPrefix(ord, "-")
	name := strings.TrimPrefix(ord, "-")
	field := entry.Schema.LookUpField(name)
	if field == nil || field.DBName == "" {
		return "", message.InvalidOrderField(r, name)
	}
	col := field.DBName
	if dialector, err := dialectors.ByDB(a.db); err == nil {
		col = dialector.EscapeField(col)
	}
	if desc {
		col += " DESC"
	}
	return col, nil
}

// exposeWriteErr maps constraint violations to a 409; any other write
// failure is surfaced as a conflict with the driver text attached.
func (a *AdminController) exposeWriteErr(r *http.Request, err error) error {
	exposed := dialectors.ExposeSQLErr(a.db, err)
	if msg, ok := exposed.(message.Message); ok {
		return msg
	}
	return message.Conflict(r).Text(err.Error())
}

func writeCSV(w http.ResponseWriter, cols []string, rows []map[string]interface{}) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=data.csv")
	data := make([][]string, 0, len(rows)+1)
	data = append(data, cols)
	for _, row := range rows {
		record := make([]string, 0, len(cols))
		for _, col := range cols {
			val := row[col]
			if val == nil {
				record = append(record, "")
				continue
			}
			record = append(record, fmt.Sprint(val))
		}
		data = append(data, record)
	}
	return csv.NewWriter(w).WriteAll(data)
}
