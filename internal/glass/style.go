package glass

// Style describes how a rounded glass rectangle is painted.
type Style struct {
	Background      Color
	Border          Color
	Highlight       Color
	CornerRadius    int
	BorderThickness int
}
