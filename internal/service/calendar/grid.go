package calendar

import (
	"slices"
	"time"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// Cells is the number of days in every grid: six Monday-first weeks.
const Cells = 42

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time // midnight in the planner timezone
	InMonth bool
	IsToday bool
	Posts   []domain.Post
}

// Key returns the cell's date as YYYY-MM-DD.
func (d Day) Key() string { return d.Date.Format(time.DateOnly) }

// Range returns the first cell's midnight and the instant after the last
// cell for the grid of anchor.
func Range(anchor domain.MonthKey, loc *time.Location) (start, end time.Time) {
	first := anchor.FirstDay(loc)
	lead := (int(first.Weekday()) + 6) % 7 // days since Monday
	start = first.AddDate(0, 0, -lead)
	end = start.AddDate(0, 0, Cells)
	return start, end
}

// Layout places posts on the 42-day grid of anchor. A post lands on the cell
// whose date equals its scheduled date in loc; unscheduled posts and posts
// outside the grid are skipped. Posts within a day are ordered by time,
// keeping input order for equal times.
func Layout(posts []domain.Post, anchor domain.MonthKey, loc *time.Location, today time.Time) []Day {
	start, _ := Range(anchor, loc)
	todayKey := today.In(loc).Format(time.DateOnly)

	byDate := make(map[string][]domain.Post)
	for _, p := range posts {
		if p.ScheduledDate == nil {
			continue
		}
		k := p.ScheduledDate.In(loc).Format(time.DateOnly)
		byDate[k] = append(byDate[k], p)
	}

	days := make([]Day, Cells)
	for i := range days {
		date := start.AddDate(0, 0, i)
		key := date.Format(time.DateOnly)

		cell := byDate[key]
		slices.SortStableFunc(cell, func(a, b domain.Post) int {
			return a.ScheduledDate.Compare(*b.ScheduledDate)
		})
		if cell == nil {
			cell = []domain.Post{}
		}

		days[i] = Day{
			Date:    date,
			InMonth: date.Month() == anchor.Month && date.Year() == anchor.Year,
			IsToday: key == todayKey,
			Posts:   cell,
		}
	}
	return days
}
