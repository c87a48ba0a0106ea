package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int      `json:"status"`            // HTTP Status Code
	Message string   `json:"message"`           // รายละเอียดของ Error
	Missing []string `json:"missing,omitempty"` // question ids ที่ขาดหายไป (validation เท่านั้น)
}
