package domain

// PhaseConfig defines one of the 15 fixed renovation phases. The set of
// phases, their order and their dependency DAG are global constants — they
// are not persisted per project. DependsOn lists phase orders that must be
// Completed or Skipped before this phase can start.
type PhaseConfig struct {
	Order         int    `json:"order"` // 1-15
	Name          string `json:"name"`
	Description   string `json:"description"`
	DependsOn     []int  `json:"dependsOn"`
	EstimatedDays int    `json:"estimatedDays"`
	Color         string `json:"color"` // Hex color for timeline rendering
}

// TaskPhases is the fixed, ordered 15-phase pipeline every project follows.
var TaskPhases = []PhaseConfig{
	{Order: 1, Name: "Civil/Masonry", Description: "Wall modifications, demolition, partition walls, waterproofing", DependsOn: nil, EstimatedDays: 14, Color: "#8B4513"},
	{Order: 2, Name: "Electrical", Description: "Wiring, switch points, DB box, fan/light points, AC points", DependsOn: []int{1}, EstimatedDays: 10, Color: "#FFD700"},
	{Order: 3, Name: "Plumbing", Description: "Water supply lines, drainage, bathroom fittings rough-in", DependsOn: []int{1}, EstimatedDays: 7, Color: "#4169E1"},
	{Order: 4, Name: "HVAC", Description: "AC installation, copper piping, drain lines, outdoor units", DependsOn: []int{2}, EstimatedDays: 5, Color: "#00CED1"},
	{Order: 5, Name: "False Ceiling", Description: "Gypsum/POP false ceiling, cove lighting, peripheral", DependsOn: []int{2, 4}, EstimatedDays: 10, Color: "#DDA0DD"},
	{Order: 6, Name: "Flooring", Description: "Tile/marble/wooden flooring, skirting, threshold", DependsOn: []int{1, 3}, EstimatedDays: 12, Color: "#D2691E"},
	{Order: 7, Name: "Painting", Description: "Primer, putty, paint coats (walls + ceiling), texture/accent walls", DependsOn: []int{5, 6}, EstimatedDays: 10, Color: "#FF6347"},
	{Order: 8, Name: "Carpentry", Description: "Wardrobes, TV unit, shoe rack, storage units, doors", DependsOn: []int{7}, EstimatedDays: 21, Color: "#8B6914"},
	{Order: 9, Name: "Kitchen", Description: "Modular kitchen installation, countertop, backsplash, chimney, hob", DependsOn: []int{3, 7}, EstimatedDays: 14, Color: "#FF8C00"},
	{Order: 10, Name: "Bathroom Fittings", Description: "Sanitaryware, CP fittings, shower, vanity, mirrors, accessories", DependsOn: []int{3, 6, 7}, EstimatedDays: 7, Color: "#5F9EA0"},
	{Order: 11, Name: "Furniture", Description: "Sofa, dining table, beds, study table, bookshelves", DependsOn: []int{7}, EstimatedDays: 14, Color: "#6B8E23"},
	{Order: 12, Name: "Curtains/Blinds", Description: "Curtain rods, curtains, blinds, sheers", DependsOn: []int{7}, EstimatedDays: 5, Color: "#9370DB"},
	{Order: 13, Name: "Appliances", Description: "Washing machine, refrigerator, microwave, water purifier, geyser", DependsOn: []int{2, 3}, EstimatedDays: 3, Color: "#708090"},
	{Order: 14, Name: "Decor", Description: "Wall art, plants, rugs, lamps, accessories, soft furnishing", DependsOn: []int{8, 11}, EstimatedDays: 7, Color: "#DB7093"},
	{Order: 15, Name: "Deep Cleaning", Description: "Post-construction deep clean of entire apartment", DependsOn: []int{8, 9, 10, 11, 12, 13, 14}, EstimatedDays: 2, Color: "#20B2AA"},
}

// PhaseByName looks up a phase config by its name.
func PhaseByName(name string) (PhaseConfig, bool) {
	for _, p := range TaskPhases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseConfig{}, false
}

// PhaseByOrder looks up a phase config by its 1-based order.
func PhaseByOrder(order int) (PhaseConfig, bool) {
	if order < 1 || order > len(TaskPhases) {
		return PhaseConfig{}, false
	}
	return TaskPhases[order-1], true
}
