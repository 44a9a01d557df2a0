package datatypes

import (
	"fmt"
	"math"
)

// CurrencyFloat rounds to two decimal places when scanned from the database.
type CurrencyFloat float32

func (c *CurrencyFloat) Scan(value interface{}) error {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return fmt.Errorf("unsupported currency value %v", value)
	}
	*c = CurrencyFloat(math.Round(f*100) / 100)
	return nil
}
