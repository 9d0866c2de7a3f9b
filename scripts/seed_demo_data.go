package main

import (
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/meetpilot-team/meetpilot/internal/infrastructure/database"
	"github.com/meetpilot-team/meetpilot/pkg/config"
)

type seedMeeting struct {
	ID            int64 `gorm:"primaryKey"`
	Title         string
	Platform      string
	Duration      *int
	Transcript    *string
	Summary       *string
	FlowchartCode *string
	Date          time.Time
}

func (seedMeeting) TableName() string { return "meetings" }

type seedActionItem struct {
	ID         int64 `gorm:"primaryKey"`
	MeetingID  *int64
	Task       string
	AssignedTo *string
	Deadline   *datatypes.Date
	Status     string
}

func (seedActionItem) TableName() string { return "action_items" }

func main() {
	log.Println("🚀 Starting demo data seeding...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	log.Println("🗑️  Cleaning up existing demo data...")
	db.Exec("DELETE FROM action_items WHERE meeting_id IN (SELECT id FROM meetings WHERE title LIKE '[demo]%')")
	db.Exec("DELETE FROM meetings WHERE title LIKE '[demo]%'")

	duration := 45
	summary := "• Discussed Q3 roadmap\n• Agreed on launch date"
	deadline := datatypes.Date(time.Now().AddDate(0, 0, 7))
	assignee := "Alice"

	meetings := []seedMeeting{
		{Title: "[demo] Sprint Planning", Platform: "Zoom", Duration: &duration, Summary: &summary, Date: time.Now().Add(-48 * time.Hour)},
		{Title: "[demo] Design Review", Platform: "Google Meet", Date: time.Now().Add(-24 * time.Hour)},
		{Title: "[demo] Standup", Platform: "Teams", Date: time.Now()},
	}

	log.Println("📝 Creating demo meetings and action items...")
	for i := range meetings {
		if err := db.Create(&meetings[i]).Error; err != nil {
			log.Printf("❌ Failed to create meeting %q: %v", meetings[i].Title, err)
			continue
		}

		item := seedActionItem{
			MeetingID:  &meetings[i].ID,
			Task:       "Follow up on " + meetings[i].Title,
			AssignedTo: &assignee,
			Deadline:   &deadline,
			Status:     "Pending",
		}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("❌ Failed to create action item for %q: %v", meetings[i].Title, err)
			continue
		}

		log.Printf("🟢 Seeded meeting %d: %s", meetings[i].ID, meetings[i].Title)
	}

	log.Println("✅ Demo data created successfully!")
	log.Println("🧹 To clean up, run: DELETE FROM meetings WHERE title LIKE '[demo]%'")
}
