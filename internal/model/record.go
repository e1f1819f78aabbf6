package model

// QueryRequest represents a single raw query submitted to the dispatcher.
// It is constructed per call and never mutated.
type QueryRequest struct {
	RawText string `json:"raw_text"`
}

// Record is a single result row. Field sets vary by fixture: a record may
// carry price, bedrooms, amenities, distance, a similarity score, a
// description, any subset of those, or fields not listed here at all.
// Consumers must tolerate missing fields and render only what is present.
type Record map[string]any

// Clone returns an independent shallow copy of the record. Values are
// scalars or small string slices, so a per-key copy is enough to keep
// callers from mutating registry fixtures.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		out[k] = v
	}
	return out
}

// Envelope status and message values. Every dispatch succeeds: an empty
// data set is a valid result, not a failure.
const (
	StatusSuccess  = "success"
	MessageQueryOK = "Query executed successfully"
)

// ResultEnvelope wraps every query result returned by the simulated engine.
type ResultEnvelope struct {
	Status  string   `json:"status"`
	Data    []Record `json:"data"`
	Message string   `json:"message"`
}

// EmptyEnvelope returns the non-error empty result used when no fixture
// rule matches a query.
func EmptyEnvelope() *ResultEnvelope {
	return &ResultEnvelope{
		Status:  StatusSuccess,
		Data:    []Record{},
		Message: MessageQueryOK,
	}
}

// NewEnvelope wraps a fixture result set in a success envelope. The records
// are cloned so the registry data stays read-only.
func NewEnvelope(records []Record) *ResultEnvelope {
	data := make([]Record, len(records))
	for i, r := range records {
		data[i] = r.Clone()
	}
	return &ResultEnvelope{
		Status:  StatusSuccess,
		Data:    data,
		Message: MessageQueryOK,
	}
}
