package services

import (
	"context"
	"time"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. They mirror the
// error semantics of the real repositories, including the sentinel errors
// returned on constraint violations.
var (
	_ repositories.IUserRepository       = (*fakeUserRepo)(nil)
	_ repositories.ITokenRepository      = (*fakeTokenRepo)(nil)
	_ repositories.ICourseRepository     = (*fakeCourseRepo)(nil)
	_ repositories.ILessonRepository     = (*fakeLessonRepo)(nil)
	_ repositories.IEnrollmentRepository = (*fakeEnrollmentRepo)(nil)
)

func farFuture() time.Time {
	return time.Now().Add(24 * time.Hour)
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateWithProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	profile.UserID = user.ID
	stored := *user
	stored.Profile = profile
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// EmailExists compares the stored value exactly, like the database does.
func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateUserAndProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	copied.Profile = profile
	copied.UpdatedAt = time.Now()
	*stored = copied
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeToken struct {
	userID    int64
	expiry    time.Time
	isRevoked bool
	createdAt time.Time
}

type fakeTokenRepo struct {
	tokens map[string]*fakeToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*fakeToken)}
}

func (f *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	if _, ok := f.tokens[token]; ok {
		return apperrors.ErrTokenInvalid
	}
	f.tokens[token] = &fakeToken{userID: userID, expiry: expiryDate, createdAt: time.Now()}
	return nil
}

func (f *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	stored, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if stored.isRevoked {
		return 0, time.Time{}, false, apperrors.ErrTokenRevoked
	}
	if stored.expiry.Before(time.Now()) {
		return 0, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return stored.userID, stored.expiry, stored.isRevoked, nil
}

func (f *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	stored, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.isRevoked = true
	return nil
}

func (f *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, stored := range f.tokens {
		if stored.userID == userID {
			stored.isRevoked = true
		}
	}
	return nil
}

func (f *fakeTokenRepo) CleanupExpiredTokens(_ context.Context) (int64, error) {
	var deleted int64
	for token, stored := range f.tokens {
		if stored.expiry.Before(time.Now()) {
			delete(f.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}

// activeTokensFor counts this user's tokens that are still usable.
func (f *fakeTokenRepo) activeTokensFor(userID int64) int {
	count := 0
	for _, stored := range f.tokens {
		if stored.userID == userID && !stored.isRevoked {
			count++
		}
	}
	return count
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseRepo) GetAll(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, int64, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		if filter.Category != "" && string(course.Category) != filter.Category {
			continue
		}
		if filter.Difficulty != "" && string(course.Difficulty) != filter.Difficulty {
			continue
		}
		if filter.InstructorID != 0 && course.InstructorID != filter.InstructorID {
			continue
		}
		copied := *course
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseRepo) GetInstructorID(_ context.Context, courseID int64) (int64, error) {
	course, ok := f.courses[courseID]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	return course.InstructorID, nil
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	stored, ok := f.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	copied.UpdatedAt = time.Now()
	*stored = copied
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeLessonRepo struct {
	lessons map[int64]*models.Lesson
	nextID  int64
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[int64]*models.Lesson), nextID: 1}
}

func (f *fakeLessonRepo) GetByCourse(_ context.Context, courseID int64) ([]models.Lesson, error) {
	out := make([]models.Lesson, 0)
	for _, lesson := range f.lessons {
		if lesson.CourseID == courseID {
			out = append(out, *lesson)
		}
	}
	return out, nil
}

func (f *fakeLessonRepo) GetByID(_ context.Context, id int64) (*models.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	copied := *lesson
	return &copied, nil
}

func (f *fakeLessonRepo) OrderExists(_ context.Context, courseID int64, order int, excludeLessonID int64) (bool, error) {
	for _, lesson := range f.lessons {
		if lesson.CourseID == courseID && lesson.Order == order && lesson.ID != excludeLessonID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLessonRepo) Create(_ context.Context, lesson *models.Lesson) error {
	for _, existing := range f.lessons {
		if existing.CourseID == lesson.CourseID && existing.Order == lesson.Order {
			return apperrors.ErrDuplicateOrder
		}
	}
	lesson.ID = f.nextID
	f.nextID++
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = lesson.CreatedAt
	copied := *lesson
	f.lessons[lesson.ID] = &copied
	return nil
}

func (f *fakeLessonRepo) Update(_ context.Context, lesson *models.Lesson) error {
	stored, ok := f.lessons[lesson.ID]
	if !ok {
		return apperrors.ErrLessonNotFound
	}
	for _, existing := range f.lessons {
		if existing.CourseID == lesson.CourseID && existing.Order == lesson.Order && existing.ID != lesson.ID {
			return apperrors.ErrDuplicateOrder
		}
	}
	copied := *lesson
	copied.UpdatedAt = time.Now()
	*stored = copied
	return nil
}

func (f *fakeLessonRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.lessons[id]; !ok {
		return apperrors.ErrLessonNotFound
	}
	delete(f.lessons, id)
	return nil
}

// fakeEnrollmentRepo embeds the course and owning user on reads, like the
// joined select in the real repository does.
type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	courses     *fakeCourseRepo
	users       *fakeUserRepo
	nextID      int64
}

func newFakeEnrollmentRepo(courses *fakeCourseRepo, users *fakeUserRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: make(map[int64]*models.Enrollment),
		courses:     courses,
		users:       users,
		nextID:      1,
	}
}

func (f *fakeEnrollmentRepo) withRelations(enrollment *models.Enrollment) *models.Enrollment {
	copied := *enrollment
	if course, ok := f.courses.courses[copied.CourseID]; ok {
		courseCopy := *course
		copied.Course = &courseCopy
	}
	if user, ok := f.users.users[copied.UserID]; ok {
		userCopy := *user
		userCopy.Profile = nil
		copied.User = &userCopy
	}
	return &copied
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := f.courses.courses[enrollment.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, existing := range f.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	enrollment.ID = f.nextID
	f.nextID++
	enrollment.EnrolledAt = time.Now()
	copied := *enrollment
	f.enrollments[enrollment.ID] = &copied
	return nil
}

func (f *fakeEnrollmentRepo) Exists(_ context.Context, userID, courseID int64) (bool, error) {
	for _, existing := range f.enrollments {
		if existing.UserID == userID && existing.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) GetByIDForUser(_ context.Context, id, userID int64) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[id]
	if !ok || enrollment.UserID != userID {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return f.withRelations(enrollment), nil
}

func (f *fakeEnrollmentRepo) ListByUser(_ context.Context, userID int64, page, pageSize int) ([]*models.Enrollment, int64, error) {
	out := make([]*models.Enrollment, 0)
	for _, enrollment := range f.enrollments {
		if enrollment.UserID == userID {
			out = append(out, f.withRelations(enrollment))
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEnrollmentRepo) UpdateProgress(_ context.Context, id, userID int64, progress int, completed bool) error {
	enrollment, ok := f.enrollments[id]
	if !ok || enrollment.UserID != userID {
		return apperrors.ErrEnrollmentNotFound
	}
	enrollment.Progress = progress
	enrollment.Completed = completed
	return nil
}

func (f *fakeEnrollmentRepo) Delete(_ context.Context, id, userID int64) error {
	enrollment, ok := f.enrollments[id]
	if !ok || enrollment.UserID != userID {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrollments, id)
	return nil
}
