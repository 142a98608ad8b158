package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 500
)

type pagedList[T any] struct {
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Count   int `json:"count"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	StatusCode int        `json:"statusCode"`
	Message    string     `json:"message"`
	Errors     []apiError `json:"errors"`
}

func errorBody(status int, code, message string) errorResponse {
	return errorResponse{
		StatusCode: status,
		Message:    message,
		Errors:     []apiError{{Code: code, Message: message}},
	}
}

func respondPage[T any](c *gin.Context, all []T) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, paginate(all, limit, offset))
}

func pageParams(c *gin.Context) (int, int, bool) {
	limit := defaultPageLimit
	offset := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxPageLimit {
			c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "InvalidInput", "limit must be between 1 and 500"))
			return 0, 0, false
		}
		limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "InvalidInput", "offset must be a non-negative integer"))
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}

func paginate[T any](all []T, limit, offset int) pagedList[T] {
	total := len(all)
	start := min(offset, total)
	end := min(start+limit, total)
	page := all[start:end]
	if page == nil {
		page = []T{}
	}
	return pagedList[T]{
		Limit:   limit,
		Offset:  offset,
		Count:   len(page),
		Total:   total,
		Results: page,
	}
}

// mergeJSON marshals v (a JSON object) and adds extra keys to it.
func mergeJSON(v any, extra map[string]any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, val := range extra {
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		fields[k] = encoded
	}
	return json.Marshal(fields)
}
