package generatedresumes

import "time"

const MimeTypePDF = "application/pdf"

// GeneratedResume indexes a rendered PDF held in the object store.
type GeneratedResume struct {
	ID           string    `json:"id"`
	EvaluationID string    `json:"evaluationId"`
	FileName     string    `json:"fileName"`
	StorageKey   string    `json:"storageKey"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	PageCount    int       `json:"pageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// StorageKey is the object key for a file produced by one evaluation.
func StorageKey(evaluationID, fileName string) string {
	return "generated/" + evaluationID + "/" + fileName
}
