package httpserver

type HandlerResponse[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination echoes the window a list was requested with. The cinema backend
// does not report totals, so Count is the number of items in this page.
type Pagination struct {
	Page  int `json:"page"  example:"1"`
	Skip  int `json:"skip"  example:"0"`
	Limit int `json:"limit" example:"50"`
	Count int `json:"count" example:"12"`
}

type APIResponse[T any] struct {
	RequestID  string      `json:"requestId,omitempty" example:"3bf74527-8097-4217-8485-ffe05d16f82e"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return e.Message
}
