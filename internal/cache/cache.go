package cache

import (
	"time"

	"github.com/ppiankov/typechart/internal/model"
)

// Cache memoizes built reports by table digest
type Cache interface {
	Get(key string) (*model.Report, bool)
	Set(key string, report *model.Report, ttl time.Duration)
	Len() int
}

// Key generates a cache key from a table digest
func Key(digest string) string {
	return "typechart:v1:" + digest
}
