package readmodel

// TyCRM is one terms-and-conditions clause.
type TyCRM struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TyCsResponse is the body of GET /api/tycs/{locale}.
type TyCsResponse struct {
	Version string  `json:"version"`
	TyCs    []TyCRM `json:"tycs"`
}
