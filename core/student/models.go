package student

// Record is one entry of the read-only student directory.
// Apogee is the unique student identifier used as a lookup key; uniqueness is
// not enforced by any loader, duplicates are tolerated and all returned.
type Record struct {
	Name    string `json:"name"`
	Filiere string `json:"filiere"` // academic program/track
	Apogee  string `json:"apogee"`
}
