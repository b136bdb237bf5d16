package services

import (
	"fmt"

	"github.com/homegym/homegym/core"
)

// BaseEndpoints returns framework-agnostic endpoint specifications for
// the full HTTP surface. Adapters dispatch on OperationID and provide
// their own framework-specific handlers.
func BaseEndpoints() []core.Endpoint {
	return []core.Endpoint{
		{
			Path:   "/sign-up",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "signUp",
				Description: "Register a new account with username, password and email",
			},
		},
		{
			Path:   "/sign-in",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "signIn",
				Description: "Authenticate an account and make it the current session",
			},
		},
		{
			Path:   "/sign-out",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "signOut",
				Description: "Clear the current session reference",
			},
		},
		{
			Path:      "/session",
			Method:    "GET",
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: "getSession",
				Description: "Get the currently authenticated account",
			},
		},
		{
			Path:      "/calendar/workouts",
			Method:    "POST",
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: "addPlannedWorkout",
				Description: "Plan a workout on a date in the current account's calendar",
			},
		},
		{
			Path:      "/calendar/plan",
			Method:    "GET",
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: "getPlan",
				Description: "Get the current account's planned workouts for a date",
			},
		},
		{
			Path:      "/exercises",
			Method:    "POST",
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: "logWorkout",
				Description: "Record a performed workout for the current account",
			},
		},
		{
			Path:      "/exercises/feedback",
			Method:    "GET",
			Protected: true,
			Metadata: core.EndpointMetadata{
				OperationID: "getFeedback",
				Description: "Compare the current account's total against a date's goal",
			},
		},
		{
			Path:   "/rankings/recompute",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "recomputeRankings",
				Description: "Recompute standings for every registered account",
			},
		},
		{
			Path:   "/rankings/:username",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "getRank",
				Description: "Get an account's standing from the last recompute",
			},
		},
		{
			Path:   "/rankings/:username/share",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "shareRank",
				Description: "Format an account's standing as a shareable message",
			},
		},
	}
}

// EndpointRegistry manages a collection of framework-agnostic endpoints
// and detects duplicate METHOD:PATH combinations.
type EndpointRegistry struct {
	endpoints map[string]*core.Endpoint
	order     []string
}

// NewEndpointRegistry creates a registry with all base endpoints
// pre-registered.
func NewEndpointRegistry() *EndpointRegistry {
	reg := &EndpointRegistry{endpoints: make(map[string]*core.Endpoint)}

	base := BaseEndpoints()
	for i := range base {
		reg.register(&base[i])
	}
	return reg
}

func (r *EndpointRegistry) register(ep *core.Endpoint) error {
	key := fmt.Sprintf("%s:%s", ep.Method, ep.Path)

	if _, exists := r.endpoints[key]; exists {
		return fmt.Errorf("endpoint conflict: %s %s already registered", ep.Method, ep.Path)
	}

	r.endpoints[key] = ep
	r.order = append(r.order, key)
	return nil
}

// RegisterExtra registers additional endpoints. If any of them
// conflicts with an existing endpoint, or with another endpoint in the
// same batch, nothing from the batch is registered.
func (r *EndpointRegistry) RegisterExtra(endpoints []core.Endpoint) error {
	seen := make(map[string]bool)
	for i := range endpoints {
		ep := &endpoints[i]
		key := fmt.Sprintf("%s:%s", ep.Method, ep.Path)

		if _, exists := r.endpoints[key]; exists {
			return fmt.Errorf("endpoint conflict: %s %s already registered", ep.Method, ep.Path)
		}
		if seen[key] {
			return fmt.Errorf("batch contains duplicate endpoint: %s %s", ep.Method, ep.Path)
		}
		seen[key] = true
	}

	for i := range endpoints {
		r.register(&endpoints[i])
	}
	return nil
}

// Endpoints returns all registered endpoints in registration order.
func (r *EndpointRegistry) Endpoints() []*core.Endpoint {
	result := make([]*core.Endpoint, 0, len(r.endpoints))
	for _, key := range r.order {
		result = append(result, r.endpoints[key])
	}
	return result
}
