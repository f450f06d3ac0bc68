package ai

// ImageDescription is the structured result of a vision call.
type ImageDescription struct {
	// Description is a detailed textual description of the image.
	Description string `json:"description"`

	// DetectedObjects lists the main objects or entities visible.
	DetectedObjects []string `json:"detected_objects"`

	// OCRText is any readable text visible in the image.
	OCRText string `json:"ocr_text"`

	// ImageType classifies the image: photo, diagram, screenshot or chart.
	ImageType string `json:"image_type"`
}
