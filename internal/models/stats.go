// ABOUTME: Warehouse statistics snapshot
package models

// WarehouseStats reports row counts per table and the database location.
type WarehouseStats struct {
	DBPath        string `json:"db_path"`
	Candidates    int    `json:"candidates"`
	ParsedResumes int    `json:"parsed_resumes"`
	Experiences   int    `json:"experiences"`
	EducationRows int    `json:"education"`
	Skills        int    `json:"skills"`
	FilterValues  int    `json:"filter_values"`
	SearchDocs    int    `json:"search_documents"`
}
