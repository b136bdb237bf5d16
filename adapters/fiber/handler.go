package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/homegym/homegym"
)

type registerInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type workoutInput struct {
	Date     string `json:"date,omitempty"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// signUp returns a handler for the sign-up endpoint
func (a *Adapter) signUp(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input registerInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		account, err := gym.Membership.Register(input.Username, input.Password, input.Email)
		if err != nil {
			return handleGymError(c, err)
		}

		gym.Logger.Info().Str("username", account.Username).Msg("account registered")
		return c.Status(http.StatusCreated).JSON(account)
	}
}

// signIn returns a handler for the sign-in endpoint
func (a *Adapter) signIn(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input credentialsInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		if !gym.Sessions.Login(input.Username, input.Password) {
			gym.Logger.Info().Str("username", input.Username).Msg("sign-in rejected")
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid username or password",
			})
		}

		gym.Logger.Info().Str("username", input.Username).Msg("session opened")
		return c.Status(http.StatusOK).JSON(gym.Sessions.Current())
	}
}

// signOut returns a handler for the sign-out endpoint. Signing out only
// drops the session reference; the account's own flag stays as it was.
func (a *Adapter) signOut(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		gym.Sessions.Logout()
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": "signed out successfully",
		})
	}
}

// session returns a handler for the get-session endpoint
func (a *Adapter) session(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(currentAccount(c))
	}
}

// addPlannedWorkout returns a handler that plans a workout on a date of
// the current account's calendar.
func (a *Adapter) addPlannedWorkout(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input workoutInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		calendar, err := homegym.NewCalendar(currentAccount(c))
		if err != nil {
			return handleGymError(c, err)
		}
		if err := calendar.AddWorkout(input.Date, input.Name, input.Duration); err != nil {
			return handleGymError(c, err)
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"date":     input.Date,
			"name":     input.Name,
			"duration": input.Duration,
		})
	}
}

// getPlan returns a handler for reading a date's planned workouts.
func (a *Adapter) getPlan(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		calendar, err := homegym.NewCalendar(currentAccount(c))
		if err != nil {
			return handleGymError(c, err)
		}

		plan, err := calendar.Plan(c.Query("date"))
		if err != nil {
			return handleGymError(c, err)
		}
		return c.Status(http.StatusOK).JSON(plan)
	}
}

// logWorkout returns a handler that records a performed workout for the
// current account.
func (a *Adapter) logWorkout(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input workoutInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		log := homegym.NewExerciseLog(currentAccount(c))
		if err := log.LogWorkout(input.Name, input.Duration); err != nil {
			return handleGymError(c, err)
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"name":     input.Name,
			"duration": input.Duration,
		})
	}
}

// getFeedback returns a handler comparing the current account's total
// against a date's goal.
func (a *Adapter) getFeedback(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		log := homegym.NewExerciseLog(currentAccount(c))

		message, err := log.Feedback(c.Query("date"))
		if err != nil {
			return handleGymError(c, err)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": message})
	}
}

// recomputeRankings returns a handler that refreshes all standings and
// drops any cached share messages built from the previous snapshot.
func (a *Adapter) recomputeRankings(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		gym.Ranking.Recompute()
		if gym.ShareCache != nil {
			_ = gym.ShareCache.Clear()
		}

		gym.Logger.Info().Int("accounts", gym.Membership.Len()).Msg("rankings recomputed")
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": "rankings recomputed",
		})
	}
}

// getRank returns a handler for an account's standing. The rank is null
// for accounts that never logged an exercise.
func (a *Adapter) getRank(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		username := c.Params("username")

		rank, err := gym.Ranking.Rank(username)
		if err != nil {
			return handleGymError(c, err)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"username": username,
			"rank":     rank,
		})
	}
}

// shareRank returns a handler formatting an account's standing as a
// shareable message, served from the share cache when possible.
func (a *Adapter) shareRank(gym *homegym.Gym) fiber.Handler {
	return func(c fiber.Ctx) error {
		username := c.Params("username")

		if gym.ShareCache != nil {
			if message, err := gym.ShareCache.Get(username); err == nil {
				return c.Status(http.StatusOK).JSON(fiber.Map{"message": message})
			}
		}

		message, err := gym.Ranking.Share(username)
		if err != nil {
			return handleGymError(c, err)
		}

		if gym.ShareCache != nil {
			// We don't fail the request if caching fails
			_ = gym.ShareCache.Set(username, message)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": message})
	}
}

// handleGymError maps domain errors to appropriate HTTP responses
func handleGymError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps homegym error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, homegym.ErrInvalidUsername),
		errors.Is(err, homegym.ErrInvalidPassword),
		errors.Is(err, homegym.ErrInvalidEmail),
		errors.Is(err, homegym.ErrInvalidDate),
		errors.Is(err, homegym.ErrInvalidWorkoutName),
		errors.Is(err, homegym.ErrInvalidDuration):
		return http.StatusBadRequest

	case errors.Is(err, homegym.ErrUsernameExists),
		errors.Is(err, homegym.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, homegym.ErrLoginRequired):
		return http.StatusUnauthorized

	case errors.Is(err, homegym.ErrAccountNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
