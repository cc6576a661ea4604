package round

import (
	"time"

	"github.com/google/uuid"
)

// Round represents one reporting period of the simulation.
type Round struct {
	ID        uuid.UUID
	Number    int
	Date      time.Time
	Comment   string
	CreatedAt time.Time
}
