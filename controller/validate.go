package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/ThomasMo54/teaching-shop-example/message"
	"github.com/ThomasMo54/teaching-shop-example/model"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm/schema"
)

var validate = validator.New()

func LoadModel(r *http.Request, jsonData []byte, mdl interface{}) error {
	if err := json.Unmarshal(jsonData, mdl); err != nil {
		return message.InvalidJSON(r).Text(err.Error())
	}
	return nil
}

func ValidateStruct(r *http.Request, mdl interface{}) error {
	if validationModel, ok := mdl.(model.ValidationModel); ok {
		if msg := validationModel.Validate(r); msg != nil {
			return msg
		}
	}
	err := validate.Struct(mdl)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil
		}

		var fields []string
		for _, err := range err.(validator.ValidationErrors) {
			fields = append(fields, strings.TrimSpace(err.Field()+" "+err.ActualTag()+" "+err.Param()))
		}
		return errors.New(strings.Join(fields, "; "))
	}
	return nil
}

func ValidateModel(r *http.Request, mdl interface{}) error {
	if err := ValidateStruct(r, mdl); err != nil {
		return message.Unprocessable(r).Text(err.Error())
	}
	return nil
}

func ValidateModels(r *http.Request, models interface{}) error {
	modelsSlice := reflect.Indirect(reflect.ValueOf(models))

	if modelsSlice.Type().Kind() != reflect.Slice {
		return message.ExpectedSlice(r)
	}
	res := ""
	for i := 0; i < modelsSlice.Len(); i++ {
		item := modelsSlice.Index(i)
		if item.Kind() != reflect.Pointer {
			item = item.Addr()
		}
		if err := ValidateStruct(r, item.Interface()); err != nil {
			res += "row " + strconv.Itoa(i+1) + ": " + err.Error() + "\n"
		}
	}

	if len(res) > 0 {
		return message.Unprocessable(r).Text(strings.TrimSuffix(res, "\n"))
	}
	return nil
}

// ValidateUpdateMap drops unknown and primary key entries from the update
// map, checks the remaining values against the fields' validate tags, and
// rewrites keys to database column names for the UPDATE statement.
func ValidateUpdateMap(r *http.Request, jsonMap map[string]interface{}, sch *schema.Schema) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	var errs []string
	for key, value := range jsonMap {
		field := sch.LookUpField(key)
		if field == nil || field.PrimaryKey || field.DBName == "" {
			continue
		}
		rules := field.Tag.Get("validate")
		rules = strings.TrimPrefix(rules, "required,")
		if rules != "" && rules != "required" && value != nil {
			if err := validate.Var(value, rules); err != nil {
				errs = append(errs, message.InvalidFieldValue(r, field.Name, rules, value).Error())
				continue
			}
		}
		values[field.DBName] = value
	}
	if len(errs) > 0 {
		return nil, message.Unprocessable(r).Text(strings.Join(errs, "; "))
	}
	if len(values) == 0 {
		return nil, message.Unprocessable(r)
	}
	return values, nil
}
