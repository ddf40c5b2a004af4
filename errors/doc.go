// Package errors provides the structured error type shared by enumkit packages.
//
// Cursor misuse (reading or advancing an exhausted enumerator) is a programmer
// error and surfaces as a panic carrying an *AppError with code
// ErrCodeExhausted. Construction-time problems, such as an invalid plan
// configuration, are returned as ordinary *AppError values.
package errors
