package models

import "time"

// Seniority is the inferred career level of a single role.
type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

// EducationLevel is an ordered degree hierarchy.
type EducationLevel string

const (
	EducationDoctorate   EducationLevel = "doctorate"
	EducationMasters     EducationLevel = "masters"
	EducationBachelors   EducationLevel = "bachelors"
	EducationAssociates  EducationLevel = "associates"
	EducationCertificate EducationLevel = "certificate"
	EducationHighSchool  EducationLevel = "high_school"
	EducationOther       EducationLevel = "other"
)

// Rank returns the position of the level in the degree hierarchy.
// Higher is better; unknown levels rank 0.
func (e EducationLevel) Rank() int {
	switch e {
	case EducationHighSchool:
		return 1
	case EducationCertificate:
		return 2
	case EducationAssociates:
		return 3
	case EducationBachelors:
		return 4
	case EducationMasters:
		return 5
	case EducationDoctorate:
		return 6
	default:
		return 0
	}
}

// Proficiency is a language proficiency level.
type Proficiency string

const (
	ProficiencyNative       Proficiency = "native"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyProfessional Proficiency = "professional"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyBasic        Proficiency = "basic"
)

// ContactInfo holds the contact details pulled from the document header.
type ContactInfo struct {
	FullName  *string  `json:"full_name"`
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	Location  *string  `json:"location"`
	LinkedIn  *string  `json:"linkedin"`
	GitHub    *string  `json:"github"`
	Portfolio *string  `json:"portfolio"`
}

// WorkExperience is one employment entry.
type WorkExperience struct {
	Employer          string     `json:"employer"`
	Title             string     `json:"title"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"` // nil means current role
	DurationMonths    *int       `json:"duration_months"`
	Bullets           []string   `json:"bullets"`
	InferredSeniority Seniority  `json:"inferred_seniority"`
	Confidence        float64    `json:"confidence"`
}

// Education is one education entry.
type Education struct {
	Institution string         `json:"institution"`
	Degree      EducationLevel `json:"degree,omitempty"`
	Field       *string        `json:"field"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	GPA         *float64       `json:"gpa"`
	Confidence  float64        `json:"confidence"`
}

// Skill is a single extracted skill keyed by a canonical taxonomy id.
type Skill struct {
	Name            string      `json:"name"`
	CanonicalID     string      `json:"canonical_id"`
	Group           string      `json:"group"`
	YearsExperience *float64    `json:"years_experience"`
	Proficiency     Proficiency `json:"proficiency,omitempty"`
	Confidence      float64     `json:"confidence"`
}

// Certification is a single certification entry.
type Certification struct {
	Name       string     `json:"name"`
	IssueDate  *time.Time `json:"issue_date"`
	Confidence float64    `json:"confidence"`
}

// Language is a spoken-language entry with proficiency.
type Language struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
	Confidence  float64     `json:"confidence"`
}

// ParsingMetadata describes how and when a candidate was parsed.
type ParsingMetadata struct {
	Filename   string    `json:"filename"`
	TextLength int       `json:"text_length"`
	Parser     string    `json:"parser"`
	ParseID    string    `json:"parse_id"`
	ParsedAt   time.Time `json:"parsed_at"`
}

// Candidate is the structured output of parsing one CV document.
// It is created once per parse call and never mutated afterwards,
// except for RawText which callers may null out for privacy.
type Candidate struct {
	Contact         ContactInfo      `json:"contact"`
	WorkExperience  []WorkExperience `json:"work_experience"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Language       `json:"languages"`
	RawText         string           `json:"raw_text,omitempty"`
	FileHash        string           `json:"file_hash"`
	ParsingMetadata ParsingMetadata  `json:"parsing_metadata"`
}
