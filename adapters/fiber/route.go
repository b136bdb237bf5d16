package fiber

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/homegym/homegym"
	"github.com/homegym/homegym/services"
)

type Adapter struct {
	app *fiber.App
}

var _ homegym.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

// RegisterRoutes mounts every endpoint from the shared registry under
// the gym's base path, dispatching on operation ID. Protected endpoints
// are wrapped with the session check.
func (a *Adapter) RegisterRoutes(gym *homegym.Gym) error {
	api := a.app.Group(gym.BasePath)

	handlers := map[string]fiber.Handler{
		"signUp":            a.signUp(gym),
		"signIn":            a.signIn(gym),
		"signOut":           a.signOut(gym),
		"getSession":        a.session(gym),
		"addPlannedWorkout": a.addPlannedWorkout(gym),
		"getPlan":           a.getPlan(gym),
		"logWorkout":        a.logWorkout(gym),
		"getFeedback":       a.getFeedback(gym),
		"recomputeRankings": a.recomputeRankings(gym),
		"getRank":           a.getRank(gym),
		"shareRank":         a.shareRank(gym),
	}

	for _, ep := range services.NewEndpointRegistry().Endpoints() {
		handler, ok := handlers[ep.Metadata.OperationID]
		if !ok {
			return fmt.Errorf("no handler for operation %q", ep.Metadata.OperationID)
		}
		if ep.Protected {
			handler = requireSession(gym, handler)
		}

		switch ep.Method {
		case fiber.MethodGet:
			api.Get(ep.Path, handler)
		case fiber.MethodPost:
			api.Post(ep.Path, handler)
		default:
			return fmt.Errorf("unsupported method %q for %s", ep.Method, ep.Path)
		}
	}

	return nil
}
