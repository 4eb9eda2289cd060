package models

// Response is the uniform JSON envelope returned by every API endpoint.
//
// Errors is serialized as null when no structured error details exist, which
// lets clients distinguish "no details" from an empty details object.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Errors  map[string]any `json:"errors"`
}

// TokenResponse carries a freshly issued bearer token back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}

// Page is the pagination wrapper for list endpoints.
type Page struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage assembles a Page from a result slice, the total row count and the
// skip/limit window that produced it.
//
// Page numbers are 1-based: page = skip/limit + 1 (integer division) and
// pages = ceil(total/limit).
func NewPage(items any, total int64, skip, limit int) Page {
	page := 1
	pages := 0
	if limit > 0 {
		page = skip/limit + 1
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Page{
		Items: items,
		Total: total,
		Page:  page,
		Size:  limit,
		Pages: pages,
	}
}
