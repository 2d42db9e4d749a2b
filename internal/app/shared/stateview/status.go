package stateview

import "farmatro/internal/domain/farm"

type StatusLabel struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

func MoistureStatus(moisture float64) StatusLabel {
	switch {
	case moisture < farm.MoistureLowThreshold:
		return StatusLabel{Text: "Dry - Crops Stressed", Tone: "danger"}
	case moisture <= 60:
		return StatusLabel{Text: "Optimal Range", Tone: "good"}
	default:
		return StatusLabel{Text: "Wet - Risk of Runoff", Tone: "warning"}
	}
}

func CropHealthStatus(cropHealth float64) StatusLabel {
	switch {
	case cropHealth > 0.7:
		return StatusLabel{Text: "Excellent Health", Tone: "good"}
	case cropHealth >= 0.5:
		return StatusLabel{Text: "Good Growth", Tone: "good"}
	case cropHealth >= 0.3:
		return StatusLabel{Text: "Moderate Health", Tone: "warning"}
	case cropHealth >= 0.1:
		return StatusLabel{Text: "Poor Health", Tone: "danger"}
	case cropHealth >= -0.1:
		return StatusLabel{Text: "Very Poor", Tone: "danger"}
	default:
		return StatusLabel{Text: "Critical - No Vegetation", Tone: "danger"}
	}
}
