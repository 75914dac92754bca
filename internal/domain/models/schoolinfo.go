package models

// SchoolInfoKey is the constant key of the single school_info document.
const SchoolInfoKey = "school_info"

// SchoolInfo is the singleton block of school-wide contact and identity
// details rendered in the site header and footer.
type SchoolInfo struct {
	Meta      `bson:",inline"`
	Key       string `bson:"key" json:"-"`
	Name      string `bson:"name" json:"name"`
	Tagline   string `bson:"tagline,omitempty" json:"tagline,omitempty"`
	About     string `bson:"about,omitempty" json:"about,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	MapURL    string `bson:"map_url,omitempty" json:"map_url,omitempty"`
}

// DefaultSchoolInfo returns the document materialized on first read.
func DefaultSchoolInfo() SchoolInfo {
	return SchoolInfo{Key: SchoolInfoKey, Name: "Oakhaven School"}
}
