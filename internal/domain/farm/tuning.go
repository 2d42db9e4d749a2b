package farm

const (
	SeasonRounds      = 12
	HandSize          = 5
	MaxCardsPerPlay   = 2
	DeckCopiesPerCard = 3

	InitialSustainability    = 100
	InitialProductivityIndex = 60
	InitialSoilPH            = 3.2

	// Fallbacks when the field-data provider fails or returns nothing.
	FallbackSoilMoisture = 45
	FallbackTemperature  = 28
	FallbackRainfall     = 0
	FallbackCropHealth   = 0.2

	NaturalMoistureDecline = 5

	// Crop health derivation: base 0.2 plus up to 0.7 from the
	// productivity/moisture product, clamped to [-1, 1].
	cropHealthBase  = 0.2
	cropHealthScale = 0.7

	// Hazard bands shared by the play-time checks, the recurrent pass and the
	// clearing pass.
	MoistureHighThreshold  = 70
	MoistureLowThreshold   = 30
	PHHighThreshold        = 7
	PHLowThreshold         = 6
	CropHealthLowThreshold = 0.3
	TemperatureMin         = 15
	TemperatureMax         = 30
	RainfallMin            = 10
	RainfallMax            = 50

	// Play-time conditional penalties (applied on top of a card's base effect).
	waterloggingProductivityLoss    = 25
	waterloggingSustainabilityLoss  = 30
	waterloggingCropHealthLoss      = 0.2
	inefficientIrrigationSusLoss    = 15
	alkalineLockoutProductivityLoss = 20
	acidToxicityProductivityLoss    = 25
	phytotoxicityCropHealthLoss     = 0.15

	// Recurrent per-round damage while a hazard condition holds.
	RecurrentWaterloggingProductivityLoss   = 5
	RecurrentWaterloggingSustainabilityLoss = 8
	RecurrentDroughtProductivityLoss        = 3
	RecurrentDroughtSustainabilityLoss      = 5
	RecurrentAlkalineProductivityLoss       = 4
	RecurrentAcidityProductivityLoss        = 6
	RecurrentPoorHealthProductivityLoss     = 8
	RecurrentPoorHealthSustainabilityLoss   = 10
	RecurrentTemperatureProductivityLoss    = 4
	RecurrentTemperatureSustainabilityLoss  = 6
	RecurrentRainfallProductivityLoss       = 3
	RecurrentRainfallSustainabilityLoss     = 5

	MaxYieldKgPerHa = 10000
)
