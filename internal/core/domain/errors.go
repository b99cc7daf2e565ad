package domain

import "errors"

// ErrFileNotFound is an error thrown when a local temp file is missing
var ErrFileNotFound = errors.New("local file not found")

// ErrObjectStore is an error thrown when the remote object store fails
var ErrObjectStore = errors.New("object store error")

// ErrObjectNotFound is an error thrown when a remote object does not exist
var ErrObjectNotFound = errors.New("object not found")

// ErrMissingCredentials is an error thrown when object store credentials are absent
var ErrMissingCredentials = errors.New("missing object store credentials")

// ErrPersistence is an error thrown when a database write fails
var ErrPersistence = errors.New("persistence error")

// ErrListingNotFound is an error thrown when a ui listing is not found
var ErrListingNotFound = errors.New("listing not found")

// ErrPaymentNotFound is an error thrown when a payment is not found
var ErrPaymentNotFound = errors.New("payment not found")

// ErrQueueClosed is an error thrown when a job is submitted after shutdown
var ErrQueueClosed = errors.New("job queue closed")

// ErrInvalidUploadKind is an error thrown when an upload kind is unknown
var ErrInvalidUploadKind = errors.New("invalid upload kind")
