package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type CoursesAPI struct {
	c *HTTPClient
}

func (a *CoursesAPI) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := a.c.get(ctx, "/courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (a *CoursesAPI) Get(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d", id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Public lists the courses visible without an account.
func (a *CoursesAPI) Public(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := a.c.get(ctx, "/courses/public", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (a *CoursesAPI) Enrolled(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := a.c.get(ctx, "/courses/enrolled", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Enroll enrolls the current user. payment may be nil for free courses.
func (a *CoursesAPI) Enroll(ctx context.Context, courseID int64, payment *models.EnrollRequest) (*models.Enrollment, error) {
	var in any
	if payment != nil {
		in = payment
	}
	var enrollment models.Enrollment
	if err := a.c.post(ctx, fmt.Sprintf("/courses/%d/enroll", courseID), in, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (a *CoursesAPI) Progress(ctx context.Context, courseID int64) (*models.CourseProgress, error) {
	var progress models.CourseProgress
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d/progress", courseID), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (a *CoursesAPI) Lessons(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d/lessons", courseID), &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (a *CoursesAPI) Lesson(ctx context.Context, courseID, lessonID int64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d/lessons/%d", courseID, lessonID), &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (a *CoursesAPI) CompleteLesson(ctx context.Context, courseID, lessonID int64) (*models.LessonCompletion, error) {
	var done models.LessonCompletion
	if err := a.c.post(ctx, fmt.Sprintf("/courses/%d/lessons/%d/complete", courseID, lessonID), nil, &done); err != nil {
		return nil, err
	}
	return &done, nil
}
