package analyses

// Analysis is the JD match result. The JSON keys are part of the API
// contract and mirror the model's response format.
type Analysis struct {
	JDMatch    string   `json:"JD Match"`
	JDKeywords []string `json:"JD Keywords"`
}

// TailoredPoints is the bullet tailoring result.
type TailoredPoints struct {
	Points []string `json:"tailored_points"`
}
