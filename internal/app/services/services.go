package services

// Services defined in this package:
// - AuthService: registration, login, refresh token rotation, logout
// - UserService: profile read/update, password change, account deletion
// - CourseService: course catalog CRUD, filtering and pagination
// - LessonService: lesson CRUD within a course
// - EnrollmentService: enrollment lifecycle and progress tracking
