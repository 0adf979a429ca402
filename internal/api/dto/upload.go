package dto

// UploadRequestDTO is the JSON upload body. Media is a remote URL or a
// base64 data URI handed straight to the media host. The multipart form
// variant carries the same fields next to the file parts.
type UploadRequestDTO struct {
	Media     string   `json:"media"`
	MediaType string   `json:"mediaType"`
	Duration  *float64 `json:"duration"`
	Tags      string   `json:"tags"`
	Source    string   `json:"source"`
}

// SignatureRequestDTO direct-upload signing request.
type SignatureRequestDTO struct {
	Timestamp int64 `json:"timestamp" binding:"required"`
}
