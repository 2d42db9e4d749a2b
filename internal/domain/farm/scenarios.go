package farm

func f(v float64) *float64 { return &v }

// Scenarios is the fixed 12-round season timeline. Auto-effects use pointer
// fields: round 5's rainfall 0mm is an explicit assignment, not an omission.
var Scenarios = []ScenarioDescriptor{
	{
		Round:   1,
		Week:    1,
		Title:   "Planting Season Begins",
		Problem: "Seeds planted, need optimal conditions for germination",
		Symptoms: Symptoms{
			Description: "Freshly planted seeds need consistent moisture and warmth",
			Warnings: []string{
				"Soil pH: 5.3 - ACIDIC (limiting nutrient uptake)",
				"Critical germination period - seeds need consistent moisture",
				"Temperature optimal for seed activation",
				"Monitor soil moisture closely for seedling emergence",
			},
		},
		Event: ScenarioEvent{Type: EventNone},
	},
	{
		Round:   2,
		Week:    2,
		Title:   "Heavy Rain During Establishment",
		Problem: "80mm rainfall forecasted - risk of seed washout and waterlogging",
		Symptoms: Symptoms{
			Description: "Newly emerged seedlings vulnerable to heavy rain",
			Warnings: []string{
				"GPM shows major storm incoming (80mm in 2 days)",
				"Risk of seed washout and seedling damage",
				"Waterlogging could suffocate young roots",
				"DO NOT IRRIGATE - natural rainfall sufficient",
			},
		},
		Event: ScenarioEvent{
			Type:  EventRain,
			Alert: "⚠️ GPM ALERT: Heavy rain (80mm). Risk of seed washout and waterlogging!",
			Icon:  "🌧️",
		},
		AutoEffects: &AutoEffects{
			Temperature:  f(21),
			SoilMoisture: f(35),
			Rainfall:     f(80),
		},
	},
	{
		Round:   3,
		Week:    3,
		Title:   "Early Vegetative Growth",
		Problem: "Seedlings establishing, need nitrogen for leaf development",
		Symptoms: Symptoms{
			Description: "Young plants showing nitrogen deficiency after heavy rain",
			Warnings: []string{
				"Soil moisture high but declining (68%)",
				"Nitrogen lost to leaching from heavy rain",
				"Crops need nitrogen for leaf development",
				"Early vegetative growth phase critical for yield potential",
			},
		},
		Event: ScenarioEvent{Type: EventNone},
		AutoEffects: &AutoEffects{
			Temperature: f(24),
			Rainfall:    f(5),
		},
	},
	{
		Round:   4,
		Week:    4,
		Title:   "Heat Stress on Young Plants",
		Problem: "Temperature spikes to 38°C - young plants vulnerable to heat stress",
		Symptoms: Symptoms{
			Description: "Heat stress affecting leaf expansion and root development",
			Warnings: []string{
				"Temperature: 38°C - CRITICAL for young plants",
				"Soil moisture dropped 30% in one week (now 28%)",
				"ECOSTRESS shows heat stress across entire farm",
				"Young plants more susceptible to heat damage",
			},
		},
		Event: ScenarioEvent{
			Type:  EventHeatwave,
			Alert: "🔥 HEAT WAVE! 38°C for 5 days. Young plants vulnerable to heat stress!",
			Icon:  "🌡️",
		},
		AutoEffects: &AutoEffects{
			Temperature:  f(38),
			SoilMoisture: f(-30),
		},
	},
	{
		Round:   5,
		Week:    5,
		Title:   "Active Vegetative Growth",
		Problem: "Crops in rapid growth phase, need optimal conditions for biomass development",
		Symptoms: Symptoms{
			Description: "Plants growing rapidly, need consistent moisture and nutrients",
			Warnings: []string{
				"Active leaf and stem development phase",
				"High nutrient demand for biomass accumulation",
				"Crops need consistent soil moisture",
				"Temperature returning to optimal range",
			},
		},
		Event: ScenarioEvent{
			Type:  EventPerfect,
			Alert: "☀️ PERFECT WEATHER: Ideal conditions for vegetative growth and biomass development.",
			Icon:  "☀️",
		},
		AutoEffects: &AutoEffects{
			Temperature: f(26),
			Rainfall:    f(0),
		},
	},
	{
		Round:   6,
		Week:    6,
		Title:   "Pest Outbreak During Growth",
		Problem: "Aphid outbreak during peak vegetative growth phase",
		Symptoms: Symptoms{
			Description: "Aphid colonies feeding on rapidly growing plants",
			Warnings: []string{
				"Aphid population exploded during growth phase",
				"30% of plants showing pest damage",
				"Pests targeting new growth and tender leaves",
				"Critical to protect biomass development",
			},
		},
		Event: ScenarioEvent{
			Type:  EventPests,
			Alert: "🐛 PEST ALERT: Aphid outbreak during peak growth! Protecting biomass development critical.",
			Icon:  "🐛",
		},
		AutoEffects: &AutoEffects{
			CropHealth:  f(-0.3),
			Temperature: f(28),
			Rainfall:    f(0),
		},
	},
	{
		Round:   7,
		Week:    7,
		Title:   "Flowering Stage Begins",
		Problem: "Crops entering reproductive phase - critical for yield formation",
		Symptoms: Symptoms{
			Description: "First flowers appearing, need optimal conditions for pollination",
			Warnings: []string{
				"Flowering stage beginning - critical for yield",
				"Need optimal soil moisture for flower development",
				"Temperature and humidity critical for pollination",
				"Harvest in 5 weeks if flowering successful",
			},
		},
		Event: ScenarioEvent{Type: EventNone},
		AutoEffects: &AutoEffects{
			Temperature: f(28),
			Rainfall:    f(0),
		},
	},
	{
		Round:   8,
		Week:    8,
		Title:   "Fungal Disease During Flowering",
		Problem: "Fungal infection threatening flower development and pollination",
		Symptoms: Symptoms{
			Description: "Fungal spores attacking flowers and reducing pollination success",
			Warnings: []string{
				"Fungal infection spreading to 60% of fields",
				"Flowers being damaged by fungal spores",
				"Pollination success rate declining",
				"Critical to protect reproductive structures",
			},
		},
		Event: ScenarioEvent{
			Type:  EventPlague,
			Alert: "🦠 PLAGUE ALERT: Fungal infection attacking flowers! Pollination at risk.",
			Icon:  "🦠",
		},
		AutoEffects: &AutoEffects{
			ProductivityIndex: f(-20),
			CropHealth:        f(-0.25),
			Temperature:       f(22),
			Rainfall:          f(15),
		},
	},
	{
		Round:   9,
		Week:    9,
		Title:   "Grain Development Begins",
		Problem: "Successful pollination leads to grain formation - need optimal conditions",
		Symptoms: Symptoms{
			Description: "Grains beginning to form, need consistent moisture and nutrients",
			Warnings: []string{
				"Grain filling stage active - critical for yield",
				"Need consistent soil moisture for grain development",
				"Temperature optimal for grain filling",
				"Harvest in 3 weeks if grain development successful",
			},
		},
		Event: ScenarioEvent{
			Type:  EventPerfect,
			Alert: "🌾 GRAIN DEVELOPMENT: Grains forming successfully. Critical period for final yield!",
			Icon:  "🌾",
		},
		AutoEffects: &AutoEffects{
			Temperature: f(24),
			Rainfall:    f(0),
		},
	},
	{
		Round:   10,
		Week:    10,
		Title:   "Drought During Grain Filling",
		Problem: "No rainfall for 2 weeks - grain development at risk",
		Symptoms: Symptoms{
			Description: "Extended dry period threatening grain filling and final yield",
			Warnings: []string{
				"No rainfall for 14 days during grain filling",
				"Soil moisture at 15% - CRITICAL for grain development",
				"Grains not filling properly due to water stress",
				"Final yield potential declining rapidly",
			},
		},
		Event: ScenarioEvent{
			Type:  EventHeatwave,
			Alert: "🏜️ DROUGHT ALERT: 14 days without rain during grain filling! Final yield at risk.",
			Icon:  "🏜️",
		},
		AutoEffects: &AutoEffects{
			Temperature:       f(35),
			SoilMoisture:      f(-25),
			Rainfall:          f(0),
			ProductivityIndex: f(-15),
		},
	},
	{
		Round:   11,
		Week:    11,
		Title:   "Grain Maturation",
		Problem: "Grains maturing, need dry conditions for harvest preparation",
		Symptoms: Symptoms{
			Description: "Grains reaching physiological maturity, preparing for harvest",
			Warnings: []string{
				"Grains reaching physiological maturity",
				"Need dry conditions for harvest preparation",
				"Soil moisture declining naturally (ideal for harvest)",
				"Harvest in 1 week if conditions remain favorable",
			},
		},
		Event: ScenarioEvent{
			Type:  EventPerfect,
			Alert: "☀️ MATURATION: Grains reaching maturity. Perfect conditions for harvest prep!",
			Icon:  "☀️",
		},
		AutoEffects: &AutoEffects{
			Temperature: f(28),
			Rainfall:    f(0),
		},
	},
	{
		Round:   12,
		Week:    12,
		Title:   "Pre-Harvest Final Challenge",
		Problem: "Final week before harvest - one last challenge to overcome",
		Symptoms: Symptoms{
			Description: "Crops ready for harvest, but final weather challenge threatens yield",
			Warnings: []string{
				"Harvest begins tomorrow",
				"Strong winds threatening to damage mature crops",
				"Need to protect crops from pre-harvest losses",
				"Final push to preserve yield potential",
			},
		},
		Event: ScenarioEvent{
			Type:  EventWind,
			Alert: "💨 WIND ALERT: 50 km/h winds before harvest! Protect mature crops from damage.",
			Icon:  "💨",
		},
		AutoEffects: &AutoEffects{
			Temperature:       f(22),
			Rainfall:          f(0),
			ProductivityIndex: f(-8),
		},
	},
}

// ScenarioForRound returns nil past the end of the season.
func ScenarioForRound(round int) *ScenarioDescriptor {
	for i := range Scenarios {
		if Scenarios[i].Round == round {
			s := Scenarios[i]
			return &s
		}
	}
	return nil
}
