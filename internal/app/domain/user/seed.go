package user

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tourguide/internal/app/models"
)

const (
	seedHistoryLength = 3

	seedMinLatitude = -85.05112878
	seedMaxLatitude = 85.05112878
)

// Seed populates the directory with count internal users, each carrying a
// short random location history from the past month. This replaces a real
// user store for simulated-fleet runs.
func Seed(d *Directory, count int) {
	for i := 0; i < count; i++ {
		userName := fmt.Sprintf("internalUser%d", i)
		u := models.NewUser(uuid.New(), userName, "000", userName+"@tourguide.com")
		for j := 0; j < seedHistoryLength; j++ {
			u.AddVisitedLocation(models.VisitedLocation{
				UserID: u.ID,
				Location: models.Location{
					Latitude:  seedMinLatitude + rand.Float64()*(seedMaxLatitude-seedMinLatitude),
					Longitude: -180 + rand.Float64()*360,
				},
				TimeVisited: randomRecentTime(),
			})
		}
		d.Add(u)
	}
	d.logger.Info("Seeded internal users", zap.Int("count", count))
}

func randomRecentTime() time.Time {
	daysBack := time.Duration(rand.Intn(30)) * 24 * time.Hour
	return time.Now().UTC().Add(-daysBack)
}
