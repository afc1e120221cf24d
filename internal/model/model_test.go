package model

import (
	"encoding/json"
	"testing"
)

func TestAmountJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"450", `"450.00"`},
		{"0.5", `"0.50"`},
		{"12.345", `"12.35"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(MustAmount(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%s) error = %v", tt.in, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%s) = %s, expected %s", tt.in, b, tt.want)
		}
	}

	var in ListingInput
	if err := json.Unmarshal([]byte(`{"monthly_price": 350.5}`), &in); err != nil {
		t.Fatalf("Unmarshal number error = %v", err)
	}
	if in.MonthlyPrice == nil || in.MonthlyPrice.String() != "350.50" {
		t.Errorf("MonthlyPrice = %v", in.MonthlyPrice)
	}
	if err := json.Unmarshal([]byte(`{"monthly_price": "200"}`), &in); err != nil {
		t.Fatalf("Unmarshal string error = %v", err)
	}
	if in.MonthlyPrice.String() != "200.00" {
		t.Errorf("MonthlyPrice = %v", in.MonthlyPrice)
	}
}

func TestListingPatchApply(t *testing.T) {
	l := Listing{Title: "Loft", Rooms: 2, Status: StatusHidden, MonthlyPrice: MustAmount("450")}
	title, rooms := "Sunny loft", 3
	ListingPatch{Title: &title, Rooms: &rooms}.Apply(&l)

	if l.Title != title || l.Rooms != 3 {
		t.Errorf("Apply() = %+v", l)
	}
	if l.Status != StatusHidden || l.MonthlyPrice.String() != "450.00" {
		t.Errorf("Apply() touched fields outside the patch: %+v", l)
	}
}

func TestCallerCapabilities(t *testing.T) {
	tests := []struct {
		caller  Caller
		auth    bool
		owner   bool
		student bool
	}{
		{Anonymous, false, false, false},
		{Caller{UserID: 1, OwnerID: 3, Role: RoleOwner}, true, true, false},
		{Caller{UserID: 1, Role: RoleOwner}, true, false, false},
		{Caller{UserID: 2, StudentID: 8, Role: RoleStudent}, true, false, true},
		{Caller{UserID: 9, Role: RoleAdmin}, true, false, false},
	}
	for _, tt := range tests {
		if got := tt.caller.Authenticated(); got != tt.auth {
			t.Errorf("%s Authenticated() = %v", tt.caller.Role, got)
		}
		if got := tt.caller.IsOwner(); got != tt.owner {
			t.Errorf("%s IsOwner() = %v", tt.caller.Role, got)
		}
		if got := tt.caller.IsStudent(); got != tt.student {
			t.Errorf("%s IsStudent() = %v", tt.caller.Role, got)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPublished, StatusHidden, StatusDeleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("archived should not be valid")
	}
}
