package model

// Document is a schema-less record as stored in a collection.
// Records read back from the store carry their identifier under "_id".
type Document map[string]any

// Collection names in the document store.
const (
	CollectionProduct    = "product"
	CollectionReview     = "review"
	CollectionCollection = "collection"
	CollectionAthlete    = "athlete"
	CollectionNewsletter = "newsletter"
)

// SubscribeResponse is returned after a newsletter signup.
type SubscribeResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Diagnostics is the status report served at /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
