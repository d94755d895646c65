package http

import "github.com/yamada-kensetsu/corporate-backend/internal/catalog/domain"

type paginationMeta struct {
	Total   int `json:"total"`
	Pages   int `json:"pages"`
	Current int `json:"current"`
}

type listResponse struct {
	Projects   []domain.Project `json:"projects"`
	Pagination paginationMeta   `json:"pagination"`
}

// categoryInfo exposes one entry of the closed category/region sets so
// the frontend no longer hardcodes them.
type categoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
