package auth

// Action is a coarse operation class checked against the capability matrix.
type Action string

const (
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionSelfUpdate   Action = "self_update"
	ActionShadowCreate Action = "shadow_create"
	ActionTransition   Action = "transition"
)

// Resource is the target entity class.
type Resource string

const (
	ResourceLocation    Resource = "location"
	ResourceBarber      Resource = "barber"
	ResourceService     Resource = "service"
	ResourceClient      Resource = "client"
	ResourceAppointment Resource = "appointment"
)

// capabilities is the role capability matrix. Identity-level scoping (a
// barber may only transition its own appointments, a client only cancels its
// own bookings) stays in the use cases, which always hold the full Actor;
// this table answers the coarse "may this role ever do this" question.
var capabilities = map[Role]map[Resource][]Action{
	RoleAdmin: {
		ResourceLocation:    {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceBarber:      {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceService:     {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceClient:      {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionShadowCreate},
		ResourceAppointment: {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionTransition},
	},
	RoleBarber: {
		ResourceLocation:    {ActionRead},
		ResourceBarber:      {ActionRead, ActionSelfUpdate},
		ResourceService:     {ActionRead},
		ResourceClient:      {ActionRead, ActionShadowCreate},
		ResourceAppointment: {ActionRead, ActionCreate, ActionTransition},
	},
	RoleClient: {
		ResourceLocation:    {ActionRead},
		ResourceBarber:      {ActionRead},
		ResourceService:     {ActionRead},
		ResourceClient:      {ActionRead, ActionSelfUpdate},
		ResourceAppointment: {ActionRead, ActionCreate, ActionTransition},
	},
	RoleAnonymous: {
		ResourceLocation: {ActionRead},
		ResourceBarber:   {ActionRead},
		ResourceService:  {ActionRead},
	},
}

// Can reports whether the actor's role grants the action on the resource.
func Can(actor Actor, action Action, resource Resource) bool {
	grants, ok := capabilities[actor.Role]
	if !ok {
		return false
	}
	allowed, ok := grants[resource]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == action {
			return true
		}
	}
	return false
}
