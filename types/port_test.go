package types_test

import (
	"math/rand"
	"testing"

	model "github.com/mondrian-framework/model-go"
	"github.com/mondrian-framework/model-go/types"
)

func TestPort_DecodeRange(t *testing.T) {
	desc := types.Port()
	v, err := model.Decode(desc, 8080.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, ok := v.(uint16); !ok || p != 8080 {
		t.Fatalf("expected port 8080, got: %#v", v)
	}
	for _, raw := range []any{0.0, 65536.0, 8080.5, -1.0, "8080"} {
		if _, err := model.Decode(desc, raw); err == nil {
			t.Fatalf("expected %#v to be rejected", raw)
		}
	}
}

func TestPort_CastsNumericStrings(t *testing.T) {
	desc := types.Port()
	v, err := model.Decode(desc, "8080", model.DecodeOptions{Casting: model.TryCasting})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(uint16) != 8080 {
		t.Fatalf("expected port 8080, got: %#v", v)
	}
}

func TestPort_Encode(t *testing.T) {
	if got := model.Encode(types.Port(), uint16(443)); got != 443.0 {
		t.Fatalf("expected the wire number 443, got: %#v", got)
	}
}

func TestPort_Arbitrary(t *testing.T) {
	desc := types.Port()
	gen, err := model.Arbitrary(desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 30; i++ {
		p := gen.Sample(r).(uint16)
		if p == 0 {
			t.Fatalf("sample %d is zero", i)
		}
	}
}
