package farm

// Cards is the fixed playable catalog. It is data, not logic: the engine only
// reads effect deltas and the defensive membership set from it.
var Cards = []Card{
	// Irrigation
	{
		ID:          "light_irrigation",
		Name:        "Sprinkler",
		Type:        CardTypeAction,
		Icon:        "💧",
		Description: "Maintains moisture",
		Effects: CardEffects{
			SoilMoisture:   15,
			Sustainability: -3,
			CropHealth:     0.05,
			SoilPH:         -0.4,
		},
		ComboTips:        []string{"Use when moisture 40-60%", "Maintenance dose"},
		TechnicalDetails: "150 m³/ha (15mm), 2-hour drip",
	},
	{
		ID:          "moderate_irrigation",
		Name:        "Drip irrigation",
		Type:        CardTypeAction,
		Icon:        "💦",
		Description: "Restore moderately the moisture",
		Effects: CardEffects{
			SoilMoisture:   25,
			Sustainability: -6,
			CropHealth:     0.06,
			SoilPH:         -0.8,
		},
		ComboTips:        []string{"Use when moisture 25-40%", "Most efficient"},
		TechnicalDetails: "300 m³/ha (30mm), 4-hour cycle",
	},
	{
		ID:          "heavy_irrigation",
		Name:        "Pivot irrigation",
		Type:        CardTypeAction,
		Icon:        "🌊",
		Description: "Full recharge of water, chance of flooding",
		Effects: CardEffects{
			SoilMoisture:      50,
			Sustainability:    -15,
			ProductivityIndex: 15,
			CropHealth:        -0.08,
			SoilPH:            -0.12,
		},
		ComboTips:        []string{"Use when moisture <25%", "May cause runoff"},
		TechnicalDetails: "500 m³/ha (50mm), 8+ hours",
		SpecialEffect:    "WATERLOGGING_RISK",
	},
	{
		ID:          "precision_drip",
		Name:        "Precision Drip",
		Type:        CardTypeAction,
		Icon:        "🎯",
		Description: "Targets only the dry zones, saving water",
		Effects: CardEffects{
			SoilMoisture:      20,
			Sustainability:    5,
			ProductivityIndex: 10,
			CropHealth:        0.1,
			SoilPH:            -0.03,
		},
		ComboTips:        []string{"Requires SMAP data", "Targets deficits only"},
		TechnicalDetails: "Variable 100-400 m³/ha, GPS-controlled",
	},

	// Fertilizer
	{
		ID:          "light_fertilizer",
		Name:        "Composte",
		Type:        CardTypeAction,
		Icon:        "🌾",
		Description: "Low impact way of fertilizing",
		Effects: CardEffects{
			ProductivityIndex: 10,
			Sustainability:    -4,
			CropHealth:        0.06,
			SoilPH:            -0.5,
		},
		ComboTips:        []string{"Use when crop health >0.6", "Prevents deficiency"},
		TechnicalDetails: "40 kg N/ha urea",
	},
	{
		ID:          "standard_fertilizer",
		Name:        "Standard NPK",
		Type:        CardTypeAction,
		Icon:        "🚜",
		Description: "Full nutrition boost but costly",
		Effects: CardEffects{
			ProductivityIndex: 25,
			Sustainability:    -12,
			CropHealth:        0.1,
			SoilPH:            -0.8,
		},
		ComboTips:        []string{"Use when crop health 0.4-0.6", "Balanced dose"},
		TechnicalDetails: "120-60-60 NPK kg/ha",
		SpecialEffect:    "NITROGEN_ACCUMULATION",
	},

	// pH management
	{
		ID:          "lime_light",
		Name:        "Truck load of lime",
		Type:        CardTypeAction,
		Icon:        "🪨",
		Description: "A small truck with lime to correct the PH",
		Effects: CardEffects{
			ProductivityIndex: 12,
			Sustainability:    -2,
			CropHealth:        0.07,
			SoilPH:            1.8,
		},
		ComboTips:        []string{"Use when pH 5.5-6.0", "Gradual pH increase"},
		TechnicalDetails: "1 ton/ha agricultural lime (CaCO₃)",
	},
	{
		ID:          "curative_fungicide",
		Name:        "Truck load of lime",
		Type:        CardTypeAction,
		Icon:        "🪨",
		Description: "A truck full of lime to correct the PH",
		Effects: CardEffects{
			ProductivityIndex: 25,
			Sustainability:    -4,
			CropHealth:        0.6,
			SoilPH:            2.9,
		},
		ComboTips:        []string{"Use after crop health shows disease symptoms", "More chemicals needed"},
		TechnicalDetails: "1.5 L/ha systemic fungicide, high application rate",
		SpecialEffect:    "RESISTANCE_RISK",
	},
	{
		ID:          "lime_heavy",
		Name:        "Lime Shipment",
		Type:        CardTypeAction,
		Icon:        "🗻",
		Description: "A big ship full of lime to correct the PH",
		Effects: CardEffects{
			ProductivityIndex: 15,
			Sustainability:    -8,
			CropHealth:        0.08,
			SoilPH:            4.0,
		},
		ComboTips:        []string{"Use when pH <5.5", "Major correction needed"},
		TechnicalDetails: "3 tons/ha agricultural lime, slow release",
		SpecialEffect:    "PH_OVERCORRECTION_RISK",
	},

	// Soil health
	{
		ID:          "cover_crop",
		Name:        "Cover Crop",
		Type:        CardTypeAction,
		Icon:        "🌱",
		Description: "Prevents soil erosion with low cost",
		Effects: CardEffects{
			Sustainability:    15,
			SoilMoisture:      5,
			CropHealth:        0.15,
			ProductivityIndex: 8,
		},
		ComboTips:        []string{"Long-term soil builder", "Reduces fertilizer needs"},
		TechnicalDetails: "Legume mix, 25 kg seed/ha",
	},
	{
		ID:          "mulching",
		Name:        "Organic Mulch",
		Type:        CardTypeAction,
		Icon:        "🍂",
		Description: "Secure the moisture in the soil",
		Effects: CardEffects{
			SoilMoisture:      10,
			Sustainability:    13,
			CropHealth:        0.1,
			ProductivityIndex: 8,
		},
		ComboTips:        []string{"Works with drip", "Long-lasting effect"},
		TechnicalDetails: "5 cm depth, 50 tonnes/ha",
	},
	{
		ID:          "conservation_till",
		Name:        "No-Till",
		Type:        CardTypeAction,
		Icon:        "🔧",
		Description: "Protects the soil from the sun, holding the humidity",
		Effects: CardEffects{
			Sustainability:    5,
			SoilMoisture:      12,
			CropHealth:        0.1,
			ProductivityIndex: 8,
		},
		ComboTips:        []string{"Protects soil", "Reduces costs"},
		TechnicalDetails: "Direct seeding, residue retention",
	},

	// Pest management
	{
		ID:          "biocontrol",
		Name:        "Biological Control",
		Type:        CardTypeAction,
		Icon:        "🐞",
		Description: "Beneficial insects for pest suppression",
		Effects: CardEffects{
			ProductivityIndex: 18,
			Sustainability:    10,
			CropHealth:        0.12,
		},
		ComboTips:        []string{"Use with temp data", "Timing matters"},
		TechnicalDetails: "Predator release, 50k insects/ha",
	},

	// Disease protection
	{
		ID:          "biocontrol_disease",
		Name:        "Biological Fungicide",
		Type:        CardTypeAction,
		Icon:        "🦠",
		Description: "Beneficial microbes suppress pathogens",
		Effects: CardEffects{
			ProductivityIndex: 12,
			Sustainability:    8,
			CropHealth:        0.08,
		},
		ComboTips:        []string{"Works best preventively", "Sustainable option"},
		TechnicalDetails: "Trichoderma/Bacillus application, preventive only",
	},

	// Weed control
	{
		ID:          "manual_weeding",
		Name:        "Manual Weeding",
		Type:        CardTypeAction,
		Icon:        "✋",
		Description: "Hand removal - Labor intensive, zero chemical",
		Effects: CardEffects{
			ProductivityIndex: 10,
			Sustainability:    10,
			CropHealth:        0.05,
		},
		ComboTips:        []string{"Best for small infestations", "Most sustainable"},
		TechnicalDetails: "Hand pulling, 20 hours labor/ha",
	},
	{
		ID:          "spot_herbicide",
		Name:        "Spot Herbicide",
		Type:        CardTypeAction,
		Icon:        "🎯",
		Description: "precise use of Herbicide",
		Effects: CardEffects{
			ProductivityIndex: 18,
			Sustainability:    -8,
			CropHealth:        0.2,
			SoilPH:            -0.2,
		},
		ComboTips:        []string{"Requires MODIS weed map", "60% less chemical"},
		TechnicalDetails: "Variable rate 0.2-0.8 L/ha, GPS-guided spray",
	},
	{
		ID:          "broadcast_herbicide",
		Name:        "Broadcast Herbicide",
		Type:        CardTypeAction,
		Icon:        "💨",
		Description: "Quick but wasteful",
		Effects: CardEffects{
			ProductivityIndex: 20,
			Sustainability:    -16,
			CropHealth:        0.25,
			SoilPH:            -0.18,
		},
		ComboTips:        []string{"Quick but wasteful", "Use when weeds are everywhere"},
		TechnicalDetails: "1.5 L/ha post-emergence herbicide, whole field",
		SpecialEffect:    "RESISTANCE_RISK",
	},

	// Drainage
	{
		ID:          "surface_drainage",
		Name:        "Surface Drainage Channels",
		Type:        CardTypeAction,
		Icon:        "〰️",
		Description: "Dig channels that drain the water away",
		Effects: CardEffects{
			SoilMoisture:      -15,
			ProductivityIndex: 5,
		},
		ComboTips:        []string{"Use after heavy rain", "Quick temporary fix"},
		TechnicalDetails: "Surface channels direct water away, seasonal",
	},
	{
		ID:          "subsurface_drainage",
		Name:        "Install Drainage Tiles",
		Type:        CardTypeAction,
		Icon:        "🔩",
		Description: "A more resource-heavy solution",
		Effects: CardEffects{
			SoilMoisture:      -15,
			ProductivityIndex: 15,
			CropHealth:        0.1,
		},
		ComboTips:        []string{"Use in chronic wet zones", "Long-term solution"},
		TechnicalDetails: "Perforated tiles 1m deep, permanent infrastructure",
	},
	{
		ID:          "emergency_pumping",
		Name:        "Emergency Pumping",
		Type:        CardTypeAction,
		Icon:        "⚡",
		Description: "Pump all the water out - very energy heavy",
		Effects: CardEffects{
			SoilMoisture:      -40,
			Sustainability:    -15,
			ProductivityIndex: 20,
			CropHealth:        -0.2,
		},
		ComboTips:        []string{"Use when ponding detected", "Saves drowning crops"},
		TechnicalDetails: "High-capacity pumps remove water in 24-48 hours",
		SpecialEffect:    "SOIL_STRUCTURE_DAMAGE",
	},

	// Satellite data
	{
		ID:          "landsat_cropHealth",
		Name:        "Landsat Analysis",
		Type:        CardTypeData,
		Icon:        "🛰️",
		Description: "High-resolution plant data from Landsat",
		Effects: CardEffects{
			CropHealth: 0.15,
		},
		ComboTips: []string{"Use for field mapping", "Targets problem areas"},
		Satellite: &SatelliteInfo{
			Satellite:   "Landsat 8/9",
			Measurement: "Crop Health Index (Normalized Difference Vegetation Index)",
			Resolution:  "30m",
			Limitations: "Cloud cover delays, 16-day revisit",
		},
		TechnicalDetails: "Landsat 8/9 OLI bands 4&5, 30m resolution, 16-day cycle",
	},
	{
		ID:          "modis_cropHealth",
		Name:        "MODIS Monitoring",
		Type:        CardTypeData,
		Icon:        "📡",
		Description: "Daily plant-health coverage from MODIS",
		Effects: CardEffects{
			CropHealth: 0.1,
		},
		ComboTips: []string{"Daily updates", "Good for large fields"},
		Satellite: &SatelliteInfo{
			Satellite:   "Terra/Aqua MODIS",
			Measurement: "Crop Health Index (Normalized Difference Vegetation Index)",
			Resolution:  "250m",
			Limitations: "Lower resolution, atmospheric interference",
		},
		TechnicalDetails: "MODIS bands 1&2, 250m resolution, daily coverage",
	},
}

// defensiveCardIDs is the fixed disease/pest/weed-control subset subject to the
// phytotoxicity rules and to plague/wind suppression. Some ids belong to cards
// not currently in the catalog; the set is kept whole so catalog rotations do
// not silently change rule behavior.
var defensiveCardIDs = map[string]bool{
	"preventive_fungicide": true,
	"biocontrol_disease":   true,
	"biocontrol":           true,
	"targeted_spray":       true,
	"manual_weeding":       true,
	"spot_herbicide":       true,
	"broadcast_herbicide":  true,
}

func IsDefensiveCard(c Card) bool {
	return defensiveCardIDs[c.ID]
}

func CardByID(id string) (Card, bool) {
	for _, c := range Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
