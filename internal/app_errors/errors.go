package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrTokenNotFound = errors.New("token not found")
var ErrTokenExpired = errors.New("token expired")
var ErrCourseNotFound = errors.New("course not found")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrQuizNotFound = errors.New("quiz not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryExists = errors.New("category already exists")
var ErrAlreadyPurchased = errors.New("course already purchased")
var ErrAccessDenied = errors.New("course must be purchased to access it")
var ErrInvalidPrice = errors.New("invalid price for paid course")
var ErrInvalidCourseType = errors.New("course type must be Free or Paid")
var ErrQuizInvalid = errors.New("invalid quiz")
var ErrNotImage = errors.New("not image")
var ErrFileSize = errors.New("file size error")
