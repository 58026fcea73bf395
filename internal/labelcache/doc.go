// Package labelcache provides a small LRU cache for per-frame label
// drawables.
//
// A Handler redraws its FPS label every frame, but the label text only
// changes when the rounded frame rate changes. Caching the built label by
// its text avoids re-measuring the same string each frame.
//
//	c := labelcache.New[string, *grid.Text](64)
//	label, _ := c.GetOrCreate("Fps: 60", func() *grid.Text { ... })
//
// # Thread Safety
//
// Cache is NOT safe for concurrent use. It is owned by a single Handler,
// which is itself driven from one render goroutine.
package labelcache
