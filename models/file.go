package models

// File is a downloaded attachment.
type File struct {
	// Reference is the server-side identifier the file was fetched by.
	Reference string

	// Name is the file name suggested by the server, may be empty.
	Name string

	// ContentType is the media type reported by the server, may be empty.
	ContentType string

	// Data is the raw file content.
	Data []byte
}

// UploadedFile is the server's answer to a file upload.
type UploadedFile struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
}
