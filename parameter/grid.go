package parameter

// Sample lattice extent and resolution
var (
	GridRangeX = [2]float64{-1, 4}
	GridRangeY = [2]float64{-1, 4}
	GridRangeZ = [2]float64{-2, 4}
)

const (
	// GridNum is the point count per axis
	GridNum = 10
)
