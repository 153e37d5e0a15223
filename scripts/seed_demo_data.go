package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/config"
	"hackconnect-backend/internal/models"

	"github.com/joho/godotenv"
)

// Seeds a handful of demo hackathons and teams so the frontend has something
// to render against a fresh Appwrite project. Run with:
//
//	go run scripts/seed_demo_data.go

type hackathonSeed struct {
	Title       string
	Description string
	Tags        []string
	Location    string
	Mode        string
	PrizePool   string
	MaxTeamSize int
	DaysFromNow int
}

type teamSeed struct {
	Name           string
	Description    string
	HackathonTitle string
	LeaderID       string
	TechStack      []string
	LookingFor     []string
}

var hackathonSeeds = []hackathonSeed{
	{
		Title:       "AI for Good",
		Description: "Build something that moves the needle on a social problem using ML.",
		Tags:        []string{"ai", "ml", "social-good"},
		Location:    "Online",
		Mode:        "online",
		PrizePool:   "$5,000",
		MaxTeamSize: 4,
		DaysFromNow: 14,
	},
	{
		Title:       "FinTech Frenzy",
		Description: "48 hours to reinvent how people move money.",
		Tags:        []string{"fintech", "web"},
		Location:    "Berlin",
		Mode:        "hybrid",
		PrizePool:   "$10,000",
		MaxTeamSize: 5,
		DaysFromNow: 30,
	},
	{
		Title:       "Open Hardware Days",
		Description: "Firmware, sensors and anything that blinks.",
		Tags:        []string{"iot", "hardware"},
		Location:    "Tallinn",
		Mode:        "offline",
		PrizePool:   "$3,000",
		MaxTeamSize: 4,
		DaysFromNow: 45,
	},
}

var teamSeeds = []teamSeed{
	{
		Name:           "Night Owls",
		Description:    "We ship after midnight.",
		HackathonTitle: "AI for Good",
		LeaderID:       "demo-user-1",
		TechStack:      []string{"go", "react", "postgres"},
		LookingFor:     []string{"designer", "ml engineer"},
	},
	{
		Name:           "Bit Shifters",
		Description:    "Low-level enjoyers welcome.",
		HackathonTitle: "Open Hardware Days",
		LeaderID:       "demo-user-2",
		TechStack:      []string{"c", "rust"},
		LookingFor:     []string{"pcb designer"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := appwrite.NewClient(cfg)
	db := appwrite.NewDatabases(client, cfg.AppwriteDatabaseID)
	ctx := context.Background()

	hackathonIDs := make(map[string]string, len(hackathonSeeds))
	for _, seed := range hackathonSeeds {
		start := time.Now().UTC().AddDate(0, 0, seed.DaysFromNow)
		data := map[string]interface{}{
			"title":         seed.Title,
			"description":   seed.Description,
			"tags":          seed.Tags,
			"start_date":    start.Format(time.RFC3339),
			"end_date":      start.AddDate(0, 0, 2).Format(time.RFC3339),
			"location":      seed.Location,
			"mode":          seed.Mode,
			"prize_pool":    seed.PrizePool,
			"max_team_size": seed.MaxTeamSize,
			"status":        "upcoming",
		}

		var created models.Hackathon
		if err := db.CreateDocument(ctx, cfg.CollectionHackathons, data, &created); err != nil {
			log.Fatalf("Failed to seed hackathon %q: %v", seed.Title, err)
		}
		hackathonIDs[seed.Title] = created.ID
		fmt.Printf("Seeded hackathon %q (%s)\n", seed.Title, created.ID)
	}

	for _, seed := range teamSeeds {
		hackathonID, ok := hackathonIDs[seed.HackathonTitle]
		if !ok {
			log.Fatalf("Team %q references unknown hackathon %q", seed.Name, seed.HackathonTitle)
		}

		data := map[string]interface{}{
			"name":          seed.Name,
			"description":   seed.Description,
			"hackathon_id":  hackathonID,
			"leader_id":     seed.LeaderID,
			"members":       []string{seed.LeaderID},
			"join_requests": []string{},
			"tech_stack":    seed.TechStack,
			"looking_for":   seed.LookingFor,
			"status":        "open",
		}

		var created models.Team
		if err := db.CreateDocument(ctx, cfg.CollectionTeams, data, &created); err != nil {
			log.Fatalf("Failed to seed team %q: %v", seed.Name, err)
		}
		fmt.Printf("Seeded team %q (%s)\n", seed.Name, created.ID)
	}

	fmt.Println("Demo data seeded successfully")
}
