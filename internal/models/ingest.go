// ABOUTME: Ingestion input and receipt types
// ABOUTME: IngestRecord is the file format the ingest command consumes
package models

// IngestRecord is one extraction output ready for the warehouse: the full
// parsed record plus the condensed summary, as produced by the extraction
// collaborator.
type IngestRecord struct {
	Parsed     *ParsedResume     `json:"parsed"`
	Summary    *CandidateSummary `json:"summary"`
	ResumePath string            `json:"resume_path,omitempty"`
}

// IngestReceipt reports one completed ingestion.
type IngestReceipt struct {
	CandidateID int64             `json:"candidate_id"`
	ParsedID    int64             `json:"parsed_id"`
	Report      *ValidationReport `json:"report,omitempty"`
}
