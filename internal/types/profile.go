package types

// CandidateProfile holds the free-text sub-fields of a candidate's record.
// When an upstream analysis layer is present these come pre-structured;
// otherwise callers fall back to the raw resume text for each field.
// Absent fields are empty strings and score accordingly, never nil.
type CandidateProfile struct {
	WorkHistory  string `json:"work_experience,omitempty"`
	Education    string `json:"education,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

// JobPosting holds the free-text sub-fields of a job description.
type JobPosting struct {
	Description             string `json:"description,omitempty"`
	EducationalRequirements string `json:"educational_requirements,omitempty"`
}
