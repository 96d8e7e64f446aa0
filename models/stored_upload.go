package models

// StoredUpload describes an uploaded leak file after the intake layer wrote
// it to the upload directory.
type StoredUpload struct {
	// Path is where the file now lives on disk.
	Path string `json:"path"`

	// OriginalName is the filename reported by the client.
	OriginalName string `json:"original_name"`

	// Size in bytes of the stored file.
	Size int64 `json:"size"`

	// Digest is the hex encoded BLAKE2b-256 sum of the file contents.
	Digest string `json:"digest"`
}
