package models

// Response is the JSON envelope returned by the posts view in JSON mode.
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// Success wraps data in a successful envelope.
func Success(data interface{}) Response {
	return Response{Success: 1, Data: data}
}

// Failure builds an error envelope.
func Failure(code string, err error) Response {
	resp := Response{Success: 0, ErrorCode: code}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
