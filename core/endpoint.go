package core

// Endpoint is a framework-agnostic description of one HTTP operation.
// Adapters map OperationID to their own handlers; Handler stays out of
// the descriptor so the same specs serve any framework.
type Endpoint struct {
	Path      string
	Method    string
	Protected bool // requires the current session
	Metadata  EndpointMetadata
}

type EndpointMetadata struct {
	OperationID string
	Description string
}
