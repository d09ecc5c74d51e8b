package types_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/types"
)

func TestUUID_DecodeAndEncode(t *testing.T) {
	desc := types.UUID()
	v, err := model.Decode(desc, "123e4567-e89b-12d3-a456-426614174000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := v.(uuid.UUID)
	if !ok {
		t.Fatalf("expected a uuid.UUID, got: %T", v)
	}
	if got := model.Encode(desc, u); got != "123e4567-e89b-12d3-a456-426614174000" {
		t.Fatalf("unexpected wire form: %#v", got)
	}
	_, err = model.Decode(desc, "not-a-uuid")
	errs, ok := model.AsDecodeErrors(err)
	if !ok || errs[0].Expected != "UUID string" {
		t.Fatalf("expected a decode error, got: %v", err)
	}
	if model.Validate(desc, "123e4567-e89b-12d3-a456-426614174000") == nil {
		t.Fatalf("expected the raw string to fail validation of the typed space")
	}
}

func TestUUID_Arbitrary(t *testing.T) {
	desc := types.UUID()
	gen, err := model.Arbitrary(desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := rand.New(rand.NewSource(2))
	seen := map[uuid.UUID]bool{}
	for i := 0; i < 10; i++ {
		u := gen.Sample(r).(uuid.UUID)
		if u == uuid.Nil {
			t.Fatalf("sample %d is the nil UUID", i)
		}
		if verr := model.Validate(desc, u); verr != nil {
			t.Fatalf("sample %d does not conform: %v", i, verr)
		}
		seen[u] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected distinct samples, got: %v", seen)
	}
}
