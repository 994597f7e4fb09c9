package health

import "github.com/gofiber/fiber/v2"

// StatusMessage is the fixed liveness payload. Orchestrator probes match on it.
const StatusMessage = "Python service is running"

// Status is the body of GET /.
type Status struct {
	Status string `json:"status"`
}

// Feature implements the loader.Feature interface.
type Feature struct{}

// NewFeature creates the health feature.
func NewFeature() *Feature {
	return &Feature{}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/", HandleStatus)
	return nil
}

// HandleStatus reports that the service is up. It never touches the database.
// @Summary Health Check
// @Description Liveness probe; always succeeds.
// @Tags health
// @Produce json
// @Success 200 {object} Status "Service status"
// @Router / [get]
func HandleStatus(c *fiber.Ctx) error {
	return c.JSON(Status{Status: StatusMessage})
}
