package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"fridge-inventory/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01 13:30:00"` {
		t.Errorf("unexpected format: %s", b)
	}
}
