package service

// defaultRecommendation is returned for labels outside the known set, so the
// lookup is total.
const defaultRecommendation = "No specific guidance for this risk level. Please consult your clinician."

var recommendations = map[string]string{
	RiskLabelLow:    "Low risk. Maintain a balanced diet and regular physical activity; re-check vitals at your next routine visit.",
	RiskLabelMedium: "Medium risk. Reduce sugar intake, increase weekly exercise, and schedule a follow-up glucose test within three months.",
	RiskLabelHigh:   "High risk. Book an appointment with your doctor for an HbA1c test and a personalised prevention plan as soon as possible.",
}

// Recommend maps a risk label to advisory text. Unknown labels get a generic
// default rather than an error.
func Recommend(label string) string {
	if text, ok := recommendations[label]; ok {
		return text
	}
	return defaultRecommendation
}
