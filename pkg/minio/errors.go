package minio

import "fmt"

// Storage error codes.
const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
)

// StorageError wraps MinIO failures with a machine-checkable code.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("minio %s: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("minio: %s: %s", e.Code, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a StorageError for connection failures.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{
		Code:    ErrCodeConnection,
		Message: "failed to communicate with storage",
		Cause:   cause,
	}
}

// NewInvalidInputError creates a StorageError for invalid input.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// NewBucketNotFoundError creates a StorageError for a missing bucket.
func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{
		Code:    ErrCodeBucketNotFound,
		Message: fmt.Sprintf("bucket not found: %s", bucketName),
	}
}

// NewObjectNotFoundError creates a StorageError for a missing object.
func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{
		Code:    ErrCodeObjectNotFound,
		Message: fmt.Sprintf("object not found: %s", objectName),
	}
}
