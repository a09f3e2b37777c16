package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CityRecounter is satisfied by *service.Services.
type CityRecounter interface {
	RecountCities()
}

// InitCityRecountCron schedules the propertiesCount reconciliation. Counts are
// already refreshed after every property change; the job repairs data written
// by other processes sharing the same store.
func InitCityRecountCron(schedule string, recounter CityRecounter) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		recountCities(recounter)
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize city recount cron: %w", err)
	}

	c.Start()
	return c, nil
}

func recountCities(recounter CityRecounter) {
	start := time.Now()
	recounter.RecountCities()
	log.Printf("City property counts recomputed in %s", time.Since(start))
}
