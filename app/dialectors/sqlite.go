package dialectors

import (
	"net/http"
	"strings"

	"github.com/ThomasMo54/teaching-shop-example/message"
)

type SqliteDialector struct {
}

func (SqliteDialector) EscapeField(fieldName string) string {
	return `"` + fieldName + `"`
}

func (SqliteDialector) ExposeSQLErr(err error) error {
	if err == nil {
		return nil
	}
	text := err.Error()
	if strings.Contains(text, "UNIQUE constraint failed") ||
		strings.Contains(text, "CHECK constraint failed") ||
		strings.Contains(text, "FOREIGN KEY constraint failed") {
		return message.FromError(http.StatusConflict, err)
	}
	return err
}
