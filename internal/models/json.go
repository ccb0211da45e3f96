package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FileData describes an uploaded asset stored in object storage.
type FileData struct {
	ID       string       `json:"id" example:"assets/logos/categories/help-center_1a2b3c4d.png"`
	Storage  string       `json:"storage" example:"s3"`
	Metadata FileMetadata `json:"metadata"`
	URLs     FileURLs     `json:"urls"`
}

type FileMetadata struct {
	Filename string `json:"filename" example:"help-center.png"`
	MimeType string `json:"mime_type" example:"image/png"`
	Size     int64  `json:"size" example:"20234"`
	Width    int    `json:"width,omitempty" example:"256"`
	Height   int    `json:"height,omitempty" example:"256"`
}

type FileURLs struct {
	Original string `json:"original" example:"https://assets.example.com/faq/assets/logos/categories/help-center_1a2b3c4d.png"`
	Thumb    string `json:"thumb,omitempty"`
}

func (f FileData) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FileData) Scan(value interface{}) error {
	return scanJSON(value, f)
}

// StringList is a list of strings persisted as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, (*[]string)(l))
}

// JSON holds an arbitrary JSON document.
type JSON json.RawMessage

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}

// NewJSON marshals v into a JSON column value. Marshal failures yield an empty document.
func NewJSON(v interface{}) JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return JSON(b)
}

func scanJSON(value interface{}, dest interface{}) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dest)
}

// UploadTicket is a presigned upload target and the file descriptor to save once uploaded.
type UploadTicket struct {
	PresignedURL string    `json:"presigned_url"`
	PublicURL    string    `json:"public_url"`
	File         FileData  `json:"file"`
	ExpiresAt    time.Time `json:"expires_at"`
}
