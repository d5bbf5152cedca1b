package model

// ListMeta carries pagination metadata returned by list endpoints.
type ListMeta struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	NextPage    *int `json:"next_page"`
	PrevPage    *int `json:"prev_page"`
}

// ListOptions are the common query parameters for list endpoints.
type ListOptions struct {
	Page    int
	PerPage int
}

// Normalize clamps list options to sane bounds.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 {
		o.PerPage = 25
	}
	if o.PerPage > 100 {
		o.PerPage = 100
	}
	return o
}
