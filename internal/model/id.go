package model

import "time"

// NextID returns an id derived from the creation instant, bumped past every
// id in used so rapid successive adds stay unique.
func NextID(now time.Time, used []int64) int64 {
	id := now.UnixMilli()
	for _, u := range used {
		if u >= id {
			id = u + 1
		}
	}
	return id
}
