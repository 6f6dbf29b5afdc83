package domain

// RawRecord is one object from the catalog's "records" array.
// Pointer fields stay nil when the key is absent or null in the response.
type RawRecord struct {
	ObjectID      *int64     `json:"objectid"`
	Title         *string    `json:"title"`
	Culture       *string    `json:"culture"`
	Period        *string    `json:"period"`
	Technique     *string    `json:"technique"`
	Dated         *string    `json:"dated"`
	Department    *string    `json:"department"`
	AccessionYear *int64     `json:"accessionyear"`
	Rank          *int64     `json:"rank"`
	ColorCount    *int64     `json:"colorcount"`
	MediaCount    *int64     `json:"mediacount"`
	Images        []RawImage `json:"images"`
	Colors        []RawColor `json:"colors"`
}

// RawImage is one entry of a record's "images" array.
type RawImage struct {
	BaseImageURL *string `json:"baseimageurl"`
	Rank         *int64  `json:"rank"`
}

// RawColor is one entry of a record's "colors" array.
type RawColor struct {
	Color   *string  `json:"color"`
	Hue     *string  `json:"hue"`
	Percent *float64 `json:"percent"`
}

// Page is a single batch of records returned by one catalog request.
type Page struct {
	// Number is the 1-based page that was requested.
	Number int

	// Records are the decoded records in response order.
	Records []RawRecord
}
