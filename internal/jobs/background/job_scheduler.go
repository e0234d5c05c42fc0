package background

import (
	"context"
	"log"
	"time"

	"rentmart/internal/models"
	"rentmart/internal/repositories"
	"rentmart/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the recurring maintenance work: keeping the availability
// cache warm for the next few days and flagging overdue pickups.
type JobScheduler struct {
	scheduler           gocron.Scheduler
	availabilityService services.AvailabilityService
	orderRepo           repositories.OrderRepository
}

func NewJobScheduler(availabilityService services.AvailabilityService, orderRepo repositories.OrderRepository) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:           scheduler,
		availabilityService: availabilityService,
		orderRepo:           orderRepo,
	}
	js.registerJobs()
	return js
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.warmAvailabilityCache),
		gocron.WithName("availability-cache-warm"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create availability warm job: %v", err)
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.reportOverduePickups),
		gocron.WithName("overdue-pickup-sweep"),
	)
	if err != nil {
		log.Printf("Failed to create overdue pickup job: %v", err)
	}
}

// warmAvailabilityCache precomputes availability for today and the next two
// days so the availability page answers from cache during business hours.
func (js *JobScheduler) warmAvailabilityCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := startOfDayUTC(time.Now())
	for i := 0; i < 3; i++ {
		date := today.AddDate(0, 0, i)
		if _, err := js.availabilityService.ComputeAvailability(ctx, date); err != nil {
			log.Printf("WARN: availability cache warm failed for %s: %v", date.Format("2006-01-02"), err)
		}
	}
}

// reportOverduePickups logs delivered orders whose event date has passed
// without the furniture coming back.
func (js *JobScheduler) reportOverduePickups() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := startOfDayUTC(time.Now())
	start := today.AddDate(0, 0, -30)
	end := today.AddDate(0, 0, -1)

	orders, err := js.orderRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		log.Printf("WARN: overdue pickup sweep failed: %v", err)
		return
	}
	for _, order := range orders {
		if order.Status == models.OrderStatusDelivered {
			log.Printf("ALERT: order %s for %s (event %s) has not been picked up", order.ID, order.CustomerName, order.EventDate.Format("2006-01-02"))
		}
	}
}

// startOfDayUTC maps a wall-clock instant to its calendar day at UTC
// midnight, the same representation event dates parse to.
func startOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
