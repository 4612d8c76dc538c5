package waste

import "testing"

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name       string
		wasteType  string
		confidence float64
		override   bool
		want       int
	}{
		{"confident battery", "Battery", 0.9, false, 50},
		{"confidence at threshold", "Laptop", 0.5, false, 600},
		{"low confidence halves points", "Laptop", 0.3, false, 300},
		{"override restores full points", "Laptop", 0.3, true, 600},
		{"low confidence television", "Television", 0.1, false, 400},
		{"unknown category", "Banana", 0.99, false, 0},
		{"unknown category with override", "Banana", 0.1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePoints(tt.wasteType, tt.confidence, tt.override)
			if got != tt.want {
				t.Errorf("CalculatePoints(%q, %v, %v) = %d, want %d", tt.wasteType, tt.confidence, tt.override, got, tt.want)
			}
		})
	}
}

func TestBasePoints(t *testing.T) {
	if points, ok := BasePoints("Washing Machine"); !ok || points != 1200 {
		t.Errorf("BasePoints(Washing Machine) = %d, %v; want 1200, true", points, ok)
	}
	if _, ok := BasePoints("Chair"); ok {
		t.Error("BasePoints(Chair) reported a known category")
	}
}
