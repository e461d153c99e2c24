package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

const (
	// DefaultListMaxKeys is the default max keys when listing objects.
	DefaultListMaxKeys = 1000
	// MaxListMaxKeys is the maximum allowed max keys for list.
	MaxListMaxKeys = 1000
	// MaxFileSizeBytes is the maximum upload file size (5GB).
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultEndpointPort is appended to endpoint if no port.
	DefaultEndpointPort = ":9000"
)

// Content disposition values for download.
const (
	DispositionAuto       = "auto"
	DispositionInline     = "inline"
	DispositionAttachment = "attachment"
)

// Presigned URL methods.
const (
	MethodGET = "GET"
	MethodPUT = "PUT"
)
