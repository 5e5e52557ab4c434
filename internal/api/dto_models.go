package api

// ErrorResponse is the generic error envelope returned by every failing
// endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a simple confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ExistsResponse answers the profile existence check without exposing
// profile contents.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// UploadResponse carries the fully-qualified URL of an uploaded file.
type UploadResponse struct {
	URL string `json:"url"`
}
