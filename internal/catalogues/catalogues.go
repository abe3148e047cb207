// Package catalogues holds the fixed catalogue table. It is deploy-time
// configuration, never created or mutated at runtime.
package catalogues

// Catalogue describes one downloadable stock catalogue.
type Catalogue struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	FileURL     string `json:"fileUrl"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// All lists every catalogue shown on the access page, in display order.
var All = []Catalogue{
	{
		Slug:        "indoor",
		Title:       "Indoor Units",
		FileURL:     "/catalogues/indoor-units.pdf",
		ImageURL:    "/images/indoor-units.png",
		Description: "VRF indoor units & cassettes - new old stock at exclusive discounted prices",
	},
	{
		Slug:        "outdoor",
		Title:       "Outdoor Units",
		FileURL:     "/catalogues/outdoor-units.pdf",
		ImageURL:    "/images/outdoor-units.png",
		Description: "VRF outdoor condensers - new old stock at exclusive discounted prices",
	},
	{
		Slug:        "accessories",
		Title:       "Accessories",
		FileURL:     "/catalogues/accessories.pdf",
		ImageURL:    "/images/accessories.png",
		Description: "Controls, remotes, parts - new old stock at exclusive discounted prices",
	},
	{
		Slug:        "split",
		Title:       "Split Units",
		FileURL:     "/catalogues/split-units.pdf",
		ImageURL:    "/images/split-units.png",
		Description: "Split AC systems - new old stock at exclusive discounted prices",
	},
	{
		Slug:        "spare",
		Title:       "Spare Parts",
		FileURL:     "/catalogues/spare-parts.pdf",
		ImageURL:    "/images/spare-parts.png",
		Description: "Genuine manufacturer parts - new old stock at exclusive discounted prices",
	},
	{
		// Bundles have no single catalogue file; the card links to the bid
		// form instead, so a download request for this slug is a 404.
		Slug:        "bundles",
		Title:       "Equipment Bundles",
		FileURL:     "",
		ImageURL:    "/images/bundles.png",
		Description: "Custom equipment combinations - mix and match from available stock",
	},
}

// BySlug returns the catalogue for slug; ok is false for unknown slugs.
func BySlug(slug string) (Catalogue, bool) {
	for _, c := range All {
		if c.Slug == slug {
			return c, true
		}
	}
	return Catalogue{}, false
}
