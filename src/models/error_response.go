package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง error
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
