package models

import (
	"io"
	"time"
)

// Multipart field names shared by the HTTP intake and the client adapter.
const (
	FormFieldContext     = "context"
	FormFieldShareDateMS = "shareDateMS"
	FormFieldPlatforms   = "platforms"
	FormFieldLeakers     = "leakers"
	FormFieldLeakFile    = "leakFile"
)

// LeakForm is the client-side view of a leak submission, before it is
// encoded as multipart/form-data.
type LeakForm struct {
	Context   string
	ShareDate time.Time
	Platforms []string
	Leakers   []string

	// FileName is sent as the multipart filename of the leakFile part.
	FileName string
	// File provides the leak contents. The caller owns closing it.
	File io.Reader
}
