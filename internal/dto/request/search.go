package request

// SearchRequest carries the raw query-string values; the service maps
// category and sort onto their closed enumerations.
type SearchRequest struct {
	Query    string `json:"q"`
	Category string `json:"category" validate:"required"`
	Sort     string `json:"sort"`
}
