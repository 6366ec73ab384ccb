package httpserver

import "github.com/andyle182810/cinemadash/pagination"

func NewPagination(skip, limit, count int) *Pagination {
	return &Pagination{
		Page:  pagination.Page(skip, limit),
		Skip:  skip,
		Limit: limit,
		Count: count,
	}
}
