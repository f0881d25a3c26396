package models

import "time"

// Course represents a single course record owned by exactly one user.
type Course struct {
	// CourseID is the internal unique identifier of the course.
	CourseID int64 `json:"id"`

	// Title is the course title. Required, non-empty.
	Title string `json:"title"`

	// Description is the course description. Required, non-empty.
	Description string `json:"description"`

	// EstimatedTime is optional free text (e.g. "12 hours").
	EstimatedTime string `json:"estimatedTime,omitempty"`

	// MaterialsNeeded is optional free text listing required materials.
	MaterialsNeeded string `json:"materialsNeeded,omitempty"`

	// UserID references the owning user. Only the owner may update or
	// delete the course.
	UserID int64 `json:"userId"`

	// Owner is the owning user embedded in read responses. Nil on writes.
	Owner *User `json:"owner,omitempty"`

	// CreatedAt and UpdatedAt are persistence timestamps. They are excluded
	// from all API responses.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseInput is the inbound JSON body for course creation and update.
// Pointer fields distinguish an absent field from one explicitly set to an
// empty string; the two cases produce different validation messages. On
// update, nil fields are left untouched by the UPDATE statement.
type CourseInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID is accepted for wire compatibility but ignored on writes:
	// ownership is always taken from the authenticated principal.
	UserID *int64 `json:"userId"`
}

// Empty reports whether the input carries no course fields at all.
func (in CourseInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.EstimatedTime == nil && in.MaterialsNeeded == nil
}
