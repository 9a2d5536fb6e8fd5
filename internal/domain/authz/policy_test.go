package authz

import "testing"

func TestCan_AdminHasEverything(t *testing.T) {
	for _, c := range allCapabilities {
		if !Can(RoleAdmin, c) {
			t.Fatalf("admin should have %s", c)
		}
	}
}

func TestCan_LimitedMatrix(t *testing.T) {
	cases := []struct {
		cap  Capability
		want bool
	}{
		{CapViewRoster, true},
		{CapCreateTutor, true},
		{CapCreateAnimal, true},
		{CapCreateVisit, false},
		{CapViewVisits, false},
		{CapEdit, false},
		{CapDelete, false},
		{CapExport, false},
	}
	for _, tc := range cases {
		if got := Can(RoleLimited, tc.cap); got != tc.want {
			t.Fatalf("limited %s: got %v want %v", tc.cap, got, tc.want)
		}
	}
}

func TestCan_UnknownRoleHasNothing(t *testing.T) {
	for _, c := range allCapabilities {
		if Can(Role("visitante"), c) {
			t.Fatalf("unknown role should not have %s", c)
		}
	}
}

func TestActor_Can(t *testing.T) {
	a := Actor{UserID: "u-1", Role: RoleLimited}
	if !a.Can(CapCreateTutor) {
		t.Fatalf("limited actor should create tutors")
	}
	if a.Can(CapDelete) {
		t.Fatalf("limited actor should not delete")
	}
}
