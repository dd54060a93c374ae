package services

import (
	"time"

	"github.com/zenithfest/zenith/internal/models"
)

func festivalDay(day int, hour int) time.Time {
	return time.Date(2026, time.October, day, hour, 0, 0, 0, time.UTC)
}

var builtinEvents = []models.Event{
	{
		Name:        "Codestorm Hackathon",
		Category:    "coding",
		Description: "24-hour build marathon. Teams ship a working product from scratch.",
		Venue:       "Innovation Block, Lab 3",
		StartsAt:    festivalDay(16, 9),
		TeamSize:    4,
		PrizePool:   50000,
	},
	{
		Name:        "Breakpoint CTF",
		Category:    "security",
		Description: "Jeopardy-style capture the flag across web, crypto and forensics.",
		Venue:       "Computer Centre",
		StartsAt:    festivalDay(16, 14),
		TeamSize:    3,
		PrizePool:   30000,
	},
	{
		Name:        "RoboWars",
		Category:    "robotics",
		Description: "8kg combat robots, knockout brackets, arena rules apply.",
		Venue:       "Main Quadrangle Arena",
		StartsAt:    festivalDay(17, 10),
		TeamSize:    5,
		PrizePool:   40000,
	},
	{
		Name:        "Paper Presentation",
		Category:    "academic",
		Description: "Present original research or survey work to a faculty panel.",
		Venue:       "Seminar Hall A",
		StartsAt:    festivalDay(17, 11),
		TeamSize:    2,
		PrizePool:   15000,
	},
	{
		Name:        "Circuit Rush",
		Category:    "electronics",
		Description: "Timed analog and digital circuit design challenges.",
		Venue:       "Electronics Lab 1",
		StartsAt:    festivalDay(18, 9),
		TeamSize:    2,
		PrizePool:   20000,
	},
	{
		Name:        "Startup Pitch Night",
		Category:    "entrepreneurship",
		Description: "Five minutes, one deck, a panel of founders and investors.",
		Venue:       "Auditorium",
		StartsAt:    festivalDay(18, 18),
		TeamSize:    4,
		PrizePool:   25000,
	},
}
