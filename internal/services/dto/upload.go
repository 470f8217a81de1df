package dto

// UploadResponse - ссылка на загруженную фотографию, подставляется в images[].url
type UploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
