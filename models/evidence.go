package models

type (
	// EvidenceFile represents an entry of GET /files/case/{id} and of the evidence section
	// of the comprehensive investigation report.
	EvidenceFile struct {
		ID                 int    `json:"id"`
		CaseID             int    `json:"case_id,omitempty"`
		FIRNumber          string `json:"fir_number,omitempty"`
		FileType           string `json:"file_type"`
		OriginalFilename   string `json:"original_filename"`
		FileHash           string `json:"file_hash"`
		VerificationStatus string `json:"verification_status,omitempty"`
		UploadedAt         Time   `json:"uploaded_at"`
	}
)

// CDRFileType marks evidence the backend can run call-detail-record analysis on.
const CDRFileType = "CDR_CSV"
