package dialectors

import (
	"net/http"
	"strings"

	"github.com/ThomasMo54/teaching-shop-example/message"
)

type PostgresDialector struct {
}

func (PostgresDialector) EscapeField(fieldName string) string {
	return `"` + fieldName + `"`
}

func (PostgresDialector) ExposeSQLErr(err error) error {
	if err == nil {
		return nil
	}
	text := err.Error()
	// 23505 unique_violation, 23503 foreign_key_violation, 23514 check_violation
	if strings.Contains(text, "SQLSTATE 23505") ||
		strings.Contains(text, "SQLSTATE 23503") ||
		strings.Contains(text, "SQLSTATE 23514") {
		return message.FromError(http.StatusConflict, err)
	}
	return err
}
