package plan

// Plan identifies one day of a recurring training split
type Plan struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Catalog is the ordered list of plans offered to the user.
type Catalog []Plan

// Default returns the seven-day split used when no plans are configured.
func Default() Catalog {
	return Catalog{
		{Key: "D1", Label: "Day 1: Chest + Triceps"},
		{Key: "D2", Label: "Day 2: Back + Biceps"},
		{Key: "D3", Label: "Day 3: Legs"},
		{Key: "D4", Label: "Day 4: Shoulders + Core"},
		{Key: "D5", Label: "Day 5: Light upper pump"},
		{Key: "D6", Label: "Day 6: Cardio"},
		{Key: "D7", Label: "Day 7: Off / light"},
	}
}
