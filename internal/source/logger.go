package source

import (
	"log"
	"time"
)

// LogRequest logs a fetch being issued against a source.
func LogRequest(source, method, target string) {
	log.Printf("[%s] %s %s", source, method, target)
}

// LogResponse logs a completed fetch.
func LogResponse(source string, statusCode int, duration time.Duration, featureCount int) {
	log.Printf("[%s] response status=%d duration=%dms features=%d",
		source, statusCode, duration.Milliseconds(), featureCount)
}

// LogError logs an error from a source operation.
func LogError(source, operation string, err error) {
	log.Printf("[%s] %s error: %v", source, operation, err)
}
