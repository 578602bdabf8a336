package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxPageSize = 100

// pagination reads skip/limit query params with sane bounds.
func pagination(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return skip, limit
}
