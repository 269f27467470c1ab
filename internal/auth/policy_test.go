package auth

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		name     string
		role     Role
		action   Action
		resource Resource
		want     bool
	}{
		{"admin creates location", RoleAdmin, ActionCreate, ResourceLocation, true},
		{"admin archives location", RoleAdmin, ActionDelete, ResourceLocation, true},
		{"admin shadow-creates client", RoleAdmin, ActionShadowCreate, ResourceClient, true},
		{"admin transitions appointment", RoleAdmin, ActionTransition, ResourceAppointment, true},

		{"barber reads location", RoleBarber, ActionRead, ResourceLocation, true},
		{"barber cannot create location", RoleBarber, ActionCreate, ResourceLocation, false},
		{"barber cannot create barber", RoleBarber, ActionCreate, ResourceBarber, false},
		{"barber self-updates", RoleBarber, ActionSelfUpdate, ResourceBarber, true},
		{"barber shadow-creates client", RoleBarber, ActionShadowCreate, ResourceClient, true},
		{"barber books manually", RoleBarber, ActionCreate, ResourceAppointment, true},
		{"barber cannot archive location", RoleBarber, ActionDelete, ResourceLocation, false},

		{"client books appointment", RoleClient, ActionCreate, ResourceAppointment, true},
		{"client transitions own booking", RoleClient, ActionTransition, ResourceAppointment, true},
		{"client cannot shadow-create", RoleClient, ActionShadowCreate, ResourceClient, false},
		{"client cannot update service", RoleClient, ActionUpdate, ResourceService, false},
		{"client self-updates", RoleClient, ActionSelfUpdate, ResourceClient, true},

		{"anonymous reads services", RoleAnonymous, ActionRead, ResourceService, true},
		{"anonymous cannot read clients", RoleAnonymous, ActionRead, ResourceClient, false},
		{"anonymous cannot book", RoleAnonymous, ActionCreate, ResourceAppointment, false},

		{"unknown role denied", Role("root"), ActionRead, ResourceLocation, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			actor := Actor{TenantID: 1, ID: 1, Role: tt.role}
			if got := Can(actor, tt.action, tt.resource); got != tt.want {
				t.Fatalf("Can(%s, %s, %s)=%v, want %v", tt.role, tt.action, tt.resource, got, tt.want)
			}
		})
	}
}
