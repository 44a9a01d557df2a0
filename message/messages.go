package message

import (
	"net/http"
	"strings"
)

// 2** - Success

// 200
func Ok(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Operation completed successfully"),
		Status:  http.StatusOK,
	}
}

// 4** - User error

// 400
func BadRequest(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Invalid request"),
		Status:  http.StatusBadRequest,
	}
}

func InvalidJSON(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The request body is not valid JSON"),
		Status:  http.StatusBadRequest,
	}
}

func InvalidUrlParameter(r *http.Request, parameter string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The URL parameter %s is missing or not valid", parameter),
		Status:  http.StatusBadRequest,
	}
}

func InvalidParamType(r *http.Request, parameter string, expected string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The parameter %s must be of type %s", parameter, expected),
		Status:  http.StatusBadRequest,
	}
}

func UnsupportedParamType(r *http.Request, typeName string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Parameters of type %s are not supported", typeName),
		Status:  http.StatusBadRequest,
	}
}

func InvalidOrderField(r *http.Request, field string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The field %s cannot be used for ordering", field),
		Status:  http.StatusBadRequest,
	}
}

func InvalidColumn(r *http.Request, field string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The column %s does not exist on this entity", field),
		Status:  http.StatusBadRequest,
	}
}

// 404
func ItemNotFound(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The requested resource was not found"),
		Status:  http.StatusNotFound,
	}
}

func UnknownEntity(r *http.Request, entity string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The entity %s is not registered", entity),
		Status:  http.StatusNotFound,
	}
}

// 409
func Conflict(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Conflict"),
		Status:  http.StatusConflict,
	}
}

func DeleteFailed(r *http.Request, blockingRelations []string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The resource cannot be deleted because it is referenced by: %s", strings.Join(blockingRelations, ", ")),
		Status:  http.StatusConflict,
	}
}

// 422
func Unprocessable(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The submitted data is not valid"),
		Status:  http.StatusUnprocessableEntity,
	}
}

func ExpectedSlice(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("An array of items was expected"),
		Status:  http.StatusUnprocessableEntity,
	}
}

func InvalidFieldRequired(r *http.Request, field string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The field %s is required", field),
		Status:  http.StatusUnprocessableEntity,
	}
}

func InvalidFieldValue(r *http.Request, field string, rules string, value interface{}) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("The value %v of field %s does not satisfy the rule %s", value, field, rules),
		Status:  http.StatusUnprocessableEntity,
	}
}

func RowError(r *http.Request, row int, text string) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Row %d: %s", row+1, text),
		Status:  http.StatusUnprocessableEntity,
	}
}

// 5** - Server error

// 500
func InternalServerError(r *http.Request) Message {
	return &Msg{
		Message: GetPrinter(r).Sprintf("Internal server error"),
		Status:  http.StatusInternalServerError,
	}
}
