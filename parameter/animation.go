package parameter

import "time"

// Frame loop
const (
	// AnimationFrames is the frame count of one animation cycle
	AnimationFrames = 100

	// AnimationInterval is the wall-clock time between frames
	AnimationInterval = 50 * time.Millisecond

	// AnimationDt is simulation time advanced per frame, t = frame * dt
	AnimationDt = 0.1

	// AnimationLoop restarts at frame 0 after the last frame
	AnimationLoop = true

	// AnimationWorkers is the goroutine count for field evaluation, 1 = sequential
	AnimationWorkers = 1
)
