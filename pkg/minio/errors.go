package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// StorageError error codes.
const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
)

// StorageError is the error type returned by all MinIO operations.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewConnectionError wraps a connection failure.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "MinIO connection error", Cause: cause}
}

// NewInvalidInputError reports an invalid request parameter.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// NewBucketNotFoundError reports a missing bucket.
func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucketName)}
}

// NewObjectNotFoundError reports a missing object.
func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", objectName)}
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if minioErr, ok := err.(minio.ErrorResponse); ok {
		switch minioErr.Code {
		case "NoSuchBucket":
			return NewBucketNotFoundError("")
		case "NoSuchKey":
			return NewObjectNotFoundError("")
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "Access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("MinIO operation failed: %s", minioErr.Code), Operation: operation, Cause: err}
		}
	}
	return NewConnectionError(err)
}

func isNotFoundError(err error) bool {
	if minioErr, ok := err.(minio.ErrorResponse); ok {
		return minioErr.Code == "NoSuchKey" || minioErr.Code == "NoSuchBucket"
	}
	return false
}
