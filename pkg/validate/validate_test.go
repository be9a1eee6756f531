package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/nightcap/pkg/validate"
)

type metricsInput struct {
	Age      int     `json:"age"       validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" validate:"required,gt=0"`
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
	Sex      string  `json:"sex"       validate:"required"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(metricsInput{Age: 30, HeightCm: 180, WeightKg: 70, Sex: "m"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(metricsInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"age", "height_cm", "weight_kg", "sex"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestGtRule(t *testing.T) {
	errs := validate.Struct(metricsInput{Age: -5, HeightCm: 180, WeightKg: 70, Sex: "m"})
	if _, ok := errs["age"]; !ok {
		t.Error("expected age > 0 to fail for -5")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); len(errs) == 0 {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Action string `json:"action" validate:"required,in=increment|decrement"`
	}
	if errs := validate.Struct(in{Action: "reset"}); len(errs) == 0 {
		t.Error("expected in-rule error for unknown action")
	}
	if errs := validate.Struct(in{Action: "increment"}); validate.HasErrors(errs) {
		t.Errorf("expected increment to pass, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,email"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Website: "junk"}); len(errs) == 0 {
		t.Error("expected non-empty nullable field to be validated")
	}
}

func TestMinMaxOnStringsAndNumbers(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=8"`
		TTLHours int    `json:"ttl"      validate:"required,min=1,max=168"`
	}
	errs := validate.Struct(in{Password: "short", TTLHours: 500})
	if _, ok := errs["password"]; !ok {
		t.Error("expected min-length error on password")
	}
	if _, ok := errs["ttl"]; !ok {
		t.Error("expected max error on ttl")
	}
}

func TestPointerInput(t *testing.T) {
	errs := validate.Struct(&metricsInput{Age: 30, HeightCm: 180, WeightKg: 70, Sex: "f"})
	if validate.HasErrors(errs) {
		t.Errorf("expected pointer input to validate, got: %v", errs)
	}
}
