package models

// JobProfile is the job requirements a candidate is scored against.
// It is validated upstream and never mutated by the scoring engine.
type JobProfile struct {
	Title                    string         `json:"title"`
	Description              string         `json:"description"`
	RequiredSkills           []string       `json:"required_skills"`
	PreferredSkills          []string       `json:"preferred_skills"`
	MinYearsExperience       *float64       `json:"min_years_experience"`
	PreferredYearsExperience *float64       `json:"preferred_years_experience"`
	MinEducation             EducationLevel `json:"min_education,omitempty"`
	PreferredEducation       EducationLevel `json:"preferred_education,omitempty"`
	RequiredCertifications   []string       `json:"required_certifications"`
	Location                 *string        `json:"location"`
	RemoteOK                 bool           `json:"remote_ok"`
	Metadata                 map[string]any `json:"metadata,omitempty"`
}
