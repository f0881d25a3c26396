package service

import (
	"context"
	"fmt"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/validators"
	"github.com/avelkin/courses-api/models"
)

// courseService is the concrete implementation of CourseService.
// Ownership decisions are never made here: the repository's conditional
// statements decide them atomically, and this layer only shapes inputs and
// relays the resulting sentinel errors.
type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewCourseService constructs a CourseService wired to the given
// CourseRepository and validator.
func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

// List returns every course with its owner embedded.
func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courseRepository.ListCourses(ctx)
}

// Get returns a single course with its owner embedded, or
// store.ErrCourseNotFound.
func (s *courseService) Get(ctx context.Context, courseID int64) (models.Course, error) {
	return s.courseRepository.GetCourse(ctx, courseID)
}

// Create validates the input and persists a new course. The owner is always
// the authenticated principal: any user id carried in the input is ignored.
func (s *courseService) Create(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Course{}, err
	}

	course := models.Course{
		Title:       *input.Title,
		Description: *input.Description,
		UserID:      owner.UserID,
	}
	if input.EstimatedTime != nil {
		course.EstimatedTime = *input.EstimatedTime
	}
	if input.MaterialsNeeded != nil {
		course.MaterialsNeeded = *input.MaterialsNeeded
	}

	created, err := s.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("func", "*courseService.Create").Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies the supplied fields to the course when owner owns it.
//
// An input with no recognised fields at all is rejected with ErrEmptyUpdate
// before touching storage. Validation is scoped to the fields actually
// present: absent fields keep their stored values, which already passed
// validation when they were written.
//
// Ownership outranks body validity: a caller who does not own the course
// gets ErrNotCourseOwner (and a missing course gets ErrCourseNotFound)
// even when the body would also have failed validation. On the happy path
// the ownership check stays inside the single conditional UPDATE; only a
// failed validation triggers a separate ownership read, and that path
// never mutates anything.
func (s *courseService) Update(ctx context.Context, owner models.User, courseID int64, input models.CourseInput) error {
	if input.Empty() {
		return ErrEmptyUpdate
	}

	if fields := providedCourseFields(input); len(fields) > 0 {
		if err := s.validator.Validate(ctx, input, fields...); err != nil {
			if ownErr := s.checkOwnership(ctx, courseID, owner.UserID); ownErr != nil {
				return ownErr
			}
			return err
		}
	}

	return s.courseRepository.UpdateOwnedCourse(ctx, courseID, owner.UserID, input)
}

// checkOwnership loads the course and reports ErrCourseNotFound or
// ErrNotCourseOwner without mutating anything.
func (s *courseService) checkOwnership(ctx context.Context, courseID, ownerID int64) error {
	course, err := s.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if course.UserID != ownerID {
		return store.ErrNotCourseOwner
	}
	return nil
}

// Delete removes the course when owner owns it.
func (s *courseService) Delete(ctx context.Context, owner models.User, courseID int64) error {
	return s.courseRepository.DeleteOwnedCourse(ctx, courseID, owner.UserID)
}

// providedCourseFields lists the validated field names present in a partial
// update. Only title and description carry validation rules.
func providedCourseFields(input models.CourseInput) []string {
	var fields []string
	if input.Title != nil {
		fields = append(fields, validators.FieldTitle)
	}
	if input.Description != nil {
		fields = append(fields, validators.FieldDescription)
	}
	return fields
}
