package helper

import (
	"jetsetgo/constants"
	"jetsetgo/model"
	"jetsetgo/utils"
	"log"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// PendingDigest reports pending hotel registrations to the admin once a day.
type PendingDigest struct {
	db        *gorm.DB
	to        string
	scheduler gocron.Scheduler
	send      func(to string, hotels []utils.PendingHotel) error
}

func NewPendingDigest(db *gorm.DB, to string) *PendingDigest {
	return &PendingDigest{db: db, to: to, send: utils.SendPendingDigest}
}

// Start schedules the digest at hour:00 every day.
func (d *PendingDigest) Start(hour int) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(uint(hour), 0, 0),
			),
		),
		gocron.NewTask(d.Run),
	)
	if err != nil {
		return err
	}

	d.scheduler = s
	s.Start()
	log.Printf("pending hotel digest scheduled daily at %02d:00", hour)
	return nil
}

func (d *PendingDigest) Stop() {
	if d.scheduler == nil {
		return
	}
	if err := d.scheduler.Shutdown(); err != nil {
		log.Printf("failed to stop digest scheduler: %v", err)
		return
	}
	log.Println("pending hotel digest stopped")
}

// Run sends one digest; it returns how many hotels were pending.
func (d *PendingDigest) Run() int {
	var hotels []model.Hotel
	if err := d.db.Where(&model.Hotel{HotelStatus: constants.HOTEL_STATUS_PENDING}).Find(&hotels).Error; err != nil {
		log.Printf("failed to load pending hotels: %v", err)
		return 0
	}
	if len(hotels) == 0 {
		return 0
	}
	log.Printf("%d hotel registration(s) pending review", len(hotels))
	if d.to == "" || !utils.MailEnabled() {
		return len(hotels)
	}

	pending := make([]utils.PendingHotel, 0, len(hotels))
	for _, h := range hotels {
		pending = append(pending, utils.PendingHotel{HotelName: h.HotelName, HotelEmail: h.HotelEmail})
	}
	if err := d.send(d.to, pending); err != nil {
		log.Printf("failed to send pending digest: %v", err)
	}
	return len(hotels)
}
