package playback

import "time"

// Remaining returns how long to wait after work has taken elapsed out of a
// target budget. Overruns yield zero: the loop falls behind real time
// instead of skipping samples, and never catches up.
func Remaining(target, elapsed time.Duration) time.Duration {
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}
