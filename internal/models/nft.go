package models

import "time"

// Attribute is a single name/value metadata trait on an NFT. Every
// minted NFT carries at least the XML hash, rarity and content size
// traits; uploaders may not supply their own.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type NFTMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"` // SVG data URI
	Attributes  []Attribute `json:"attributes"`
	ExternalURL string      `json:"external_url"`
	License     string      `json:"license"`
	Provenance  string      `json:"provenance"`
}

// NFT is the minted collectible record. The registry owns these; the
// listing fields (Price, IsListed, ListingDate) are only touched by
// marketplace transitions and are either all set or all cleared.
type NFT struct {
	ID          string      `json:"id"`
	TokenID     string      `json:"token_id"`
	TokenURI    string      `json:"token_uri"`
	Metadata    NFTMetadata `json:"metadata"`
	XMLContent  string      `json:"xml_content"`
	XMLHash     string      `json:"xml_hash"`
	Owner       string      `json:"owner"`
	Rarity      string      `json:"rarity"`
	CreatedAt   time.Time   `json:"created_at"`
	Price       *float64    `json:"price,omitempty"`
	IsListed    bool        `json:"is_listed"`
	ListingDate *time.Time  `json:"listing_date,omitempty"`
}
