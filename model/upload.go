package model

type PhotoUpload struct {
	DTO
	Photo string `json:"photo"`
}

func (PhotoUpload) TableName() string { return "photoUpload" }

type FileUploadResponse struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}
