package models

// Record is one portfolio item in the generated dataset.
// Field order matters: it is the order written to data.json.
type Record struct {
	ID          string   `json:"id" bson:"id" yaml:"id" codec:"id"`
	Title       string   `json:"title" bson:"title" yaml:"title" codec:"title"`
	Year        string   `json:"year" bson:"year" yaml:"year" codec:"year"`
	Client      string   `json:"client" bson:"client" yaml:"client" codec:"client"`
	Type        string   `json:"type" bson:"type" yaml:"type" codec:"type"`
	Description string   `json:"description" bson:"description" yaml:"description" codec:"description"`
	Assets      []string `json:"assets" bson:"assets" yaml:"assets" codec:"assets"`
}

// CSVRecord flattens Record for csvutil, which has no slice support.
type CSVRecord struct {
	ID          string `csv:"id"`
	Title       string `csv:"title"`
	Year        string `csv:"year"`
	Client      string `csv:"client"`
	Type        string `csv:"type"`
	Description string `csv:"description"`
	Assets      string `csv:"assets"`
}

// Work is a hand-built piece found under works/works_NN.
type Work struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Path  string `json:"path" bson:"path"`
}
