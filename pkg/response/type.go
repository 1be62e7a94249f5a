package response

const (
	DefaultErrorMessage     = "something went wrong"
	InternalServerErrorCode = 500
)

// Resp is the standard JSON error body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}
