package controller

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

func ShouldPaginate(pagStart, pagEnd string) bool {
	return len(pagStart) > 0 || len(pagEnd) > 0
}

func GetOffset(pagStart string) int {
	offset, err := strconv.Atoi(pagStart)
	if err != nil {
		return 0
	}
	return offset
}

func GetLimit(pagStart, pagEnd string) int {
	end, err := strconv.Atoi(pagEnd)
	if err != nil {
		return 100
	}
	return end - GetOffset(pagStart)
}

func Paginate(pagStart, pagEnd string) func(*gorm.DB) *gorm.DB {
	if ShouldPaginate(pagStart, pagEnd) {
		offset := GetOffset(pagStart)
		limit := GetLimit(pagStart, pagEnd)

		return func(query *gorm.DB) *gorm.DB {
			return query.Offset(offset).Limit(limit)
		}
	}
	return func(query *gorm.DB) *gorm.DB {
		return query
	}
}

// WriteCountHeaders sets X-Total-Count and, when another page remains, the
// Link header pointing at the next page with the same query parameters.
func WriteCountHeaders(w http.ResponseWriter, r *http.Request, count int64) {
	w.Header().Set("X-Total-Count", strconv.Itoa(int(count)))
	pagStart := r.URL.Query().Get("pagStart")
	pagEnd := r.URL.Query().Get("pagEnd")
	if !ShouldPaginate(pagStart, pagEnd) {
		return
	}
	limit := GetLimit(pagStart, pagEnd)
	start := GetOffset(pagStart) + limit
	end := start + limit
	if int64(start) >= count {
		return
	}
	var params []string
	for key, values := range r.URL.Query() {
		switch key {
		case "pagStart":
			params = append(params, key+"="+strconv.Itoa(start))
		case "pagEnd":
			params = append(params, key+"="+strconv.Itoa(end))
		default:
			params = append(params, key+"="+strings.Join(values, "&"+key+"="))
		}
	}
	w.Header().Set("Link", r.URL.Path+"?"+strings.Join(params, "&"))
}
