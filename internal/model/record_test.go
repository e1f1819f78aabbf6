package model

import "testing"

func TestRecordClone_Independent(t *testing.T) {
	original := Record{
		"address":   "456 Pine St",
		"amenities": []string{"fireplace", "balcony"},
	}

	clone := original.Clone()
	clone["address"] = "changed"
	clone["amenities"].([]string)[0] = "changed"

	if original["address"] != "456 Pine St" {
		t.Errorf("Clone shares the address field: %v", original["address"])
	}
	if original["amenities"].([]string)[0] != "fireplace" {
		t.Errorf("Clone shares the amenities slice: %v", original["amenities"])
	}
}

func TestNewEnvelope_ClonesRecords(t *testing.T) {
	fixture := []Record{{"property_id": 1}}

	envelope := NewEnvelope(fixture)
	envelope.Data[0]["property_id"] = 99

	if fixture[0]["property_id"] != 1 {
		t.Errorf("Envelope shares the fixture record: %v", fixture[0]["property_id"])
	}
}

func TestEmptyEnvelope(t *testing.T) {
	envelope := EmptyEnvelope()

	if envelope.Status != StatusSuccess {
		t.Errorf("Expected status %q, got %q", StatusSuccess, envelope.Status)
	}
	if envelope.Data == nil || len(envelope.Data) != 0 {
		t.Errorf("Expected empty non-nil data, got %v", envelope.Data)
	}
	if envelope.Message != MessageQueryOK {
		t.Errorf("Unexpected message: %q", envelope.Message)
	}
}
