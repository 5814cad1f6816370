package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateWorkerRequestID prefixes the id so background runs are easy to tell
// apart from HTTP requests in logs.
func GenerateWorkerRequestID(job string) string {
	return job + "-" + uuid.NewString()
}
