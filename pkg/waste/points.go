package waste

// Points table per detected e-waste category. Values mirror the reward
// schedule shown on bin panels.
var pointsTable = map[string]int{
	"Battery":         50,
	"Keyboard":        100,
	"Microwave":       500,
	"Mobile":          300,
	"Mouse":           75,
	"PCB":             200,
	"Player":          150,
	"Printer":         400,
	"Television":      800,
	"Washing Machine": 1200,
	"Laptop":          600,
}

// Detections below this confidence only earn half points unless the user
// explicitly confirmed the category.
const confidenceThreshold = 0.5

func BasePoints(wasteType string) (int, bool) {
	points, ok := pointsTable[wasteType]
	return points, ok
}

func CalculatePoints(wasteType string, confidence float64, userOverride bool) int {
	base, ok := pointsTable[wasteType]
	if !ok {
		return 0
	}

	if userOverride || confidence >= confidenceThreshold {
		return base
	}
	return base / 2
}
