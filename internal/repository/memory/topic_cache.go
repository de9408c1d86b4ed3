package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const topicNamesKey = "topic_names"

// TopicCache holds the sorted category name list offered to the model as
// redirect targets.
type TopicCache struct {
	cache *cache.Cache
}

func NewTopicCache(ttl time.Duration) *TopicCache {
	return &TopicCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *TopicCache) Get() ([]string, bool) {
	if x, found := c.cache.Get(topicNamesKey); found {
		names := x.([]string)
		out := make([]string, len(names))
		copy(out, names)
		return out, true
	}
	return nil, false
}

func (c *TopicCache) Set(names []string) {
	stored := make([]string, len(names))
	copy(stored, names)
	c.cache.Set(topicNamesKey, stored, cache.DefaultExpiration)
}

func (c *TopicCache) Invalidate() {
	c.cache.Delete(topicNamesKey)
}
