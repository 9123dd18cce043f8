package dto

// FileUploadResponse - ответ на загрузку файла
type FileUploadResponse struct {
	ID      string `json:"id" xml:"Id"`
	Message string `json:"message" xml:"Message"`
}
