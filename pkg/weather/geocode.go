package weather

// GeocodeResolution is the outcome of resolving a city query. It is a closed
// union: exactly one of Selected, NeedsDisambiguation, or NotFound. Consumers
// dispatch with a type switch so every variant is handled or explicitly
// ignored.
type GeocodeResolution interface {
	geocodeResolution()
}

// Selected means exactly one plausible location matched the query.
type Selected struct {
	Location Location
}

// NeedsDisambiguation carries up to five near-equally-plausible candidates
// for the user to choose among.
type NeedsDisambiguation struct {
	Options []Location
}

// NotFound means the provider returned no candidates for the query.
type NotFound struct {
	Query string
}

func (Selected) geocodeResolution()            {}
func (NeedsDisambiguation) geocodeResolution() {}
func (NotFound) geocodeResolution()            {}
