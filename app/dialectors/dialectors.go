package dialectors

import (
	"errors"

	"gorm.io/gorm"
)

var registeredDialectors = map[string]Dialector{}

func Register(name string, dialector Dialector) {
	registeredDialectors[name] = dialector
}

func ByName(name string) (Dialector, error) {
	if dialector, ok := registeredDialectors[name]; ok {
		return dialector, nil
	}
	return nil, errors.New("please register a valid dialector with dialectors.Register(name, dialector) for the " + name + " dialect")
}

func ByDB(db *gorm.DB) (Dialector, error) {
	return ByName(db.Dialector.Name())
}

// ExposeSQLErr maps driver errors the client may act on (constraint
// violations) to user-visible errors. Unknown dialects and unmapped errors
// pass through unchanged.
func ExposeSQLErr(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if dialector, e := ByDB(db); e == nil {
		return dialector.ExposeSQLErr(err)
	}
	return err
}

func init() {
	Register("sqlite", SqliteDialector{})
	Register("postgres", PostgresDialector{})
}
