package models

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TagsResponse is the body of the tag index endpoint.
type TagsResponse struct {
	Tags []string `json:"tags"`
}
