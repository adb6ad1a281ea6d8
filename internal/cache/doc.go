// Package cache provides a small generic LRU cache.
//
//	c := cache.New[*text.FontSource, *font.Font](16)
//	c.Set(src, f)
//	f, ok := c.Get(src)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
