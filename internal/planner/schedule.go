package planner

import (
	"fmt"
	"strings"

	"basegraph.app/growthplan/internal/model"
)

// Weekdays are the only days ever scheduled.
var Weekdays = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

const (
	veryLimitedTaskLimit = 1
	limitedTaskLimit     = 2
	taskIDSlugLength     = 24
)

// weeklyTexts picks the worker-count variant of the template for one day.
func (w weeklyTemplate) weeklyTexts(day, workers int) []string {
	switch {
	case workers <= 1:
		return append([]string(nil), w.solo[day]...)
	case workers == 2:
		return append([]string(nil), w.pair[day]...)
	}

	texts := append([]string(nil), w.pair[day]...)
	texts = append(texts, w.thirdRow[day])
	if day == len(Weekdays)-1 {
		texts = append(texts, teamSyncTask)
	}
	return texts
}

// trimForTime keeps the first task under an hour a day and the first two under two hours.
func trimForTime(texts []string, f model.Flags) []string {
	limit := len(texts)
	switch {
	case f.VeryLimitedTime:
		limit = veryLimitedTaskLimit
	case f.LimitedTime:
		limit = limitedTaskLimit
	}
	if limit < len(texts) {
		return texts[:limit]
	}
	return texts
}

func suppressSocial(texts []string, f model.Flags) []string {
	if f.CanDoSocialMedia {
		return texts
	}
	out := texts[:0:0]
	for _, text := range texts {
		if !IsSocialMediaTask(text) {
			out = append(out, text)
		}
	}
	return out
}

// buildSchedule produces the Monday..Friday plan for the branch.
func buildSchedule(s *strategy, c model.Constraints, f model.Flags, category model.BusinessCategory) []model.DayPlan {
	days := make([]model.DayPlan, 0, len(Weekdays))
	for i, day := range Weekdays {
		texts := s.weekly.weeklyTexts(i, c.WorkerCount)
		texts = trimForTime(texts, f)
		texts = suppressSocial(texts, f)

		tasks := make([]model.TaskItem, 0, len(texts))
		for j, text := range texts {
			weekly := ClassifyWeeklyTask(text)
			tasks = append(tasks, model.TaskItem{
				ID:        taskID(day, j+1, text),
				Text:      text,
				Category:  weekly,
				Reasoning: taskReasoning(text, c, day),
				Content:   taskContent(text, weekly, category),
			})
		}
		days = append(days, model.DayPlan{Day: day, Tasks: tasks})
	}
	return days
}

// taskID is "<day prefix>-<position>-<slug>", e.g. "mon-1-update-the-google-busine".
func taskID(day string, index int, text string) string {
	prefix := strings.ToLower(day[:3])
	return fmt.Sprintf("%s-%d-%s", prefix, index, slugify(stripWorkerLabel(text), taskIDSlugLength))
}

// stripWorkerLabel drops a leading "Worker N:" or "All workers:" label.
func stripWorkerLabel(text string) string {
	if i := strings.Index(text, ": "); i >= 0 && i < 16 {
		return text[i+2:]
	}
	return text
}

func slugify(text string, limit int) string {
	if len(text) > limit {
		text = text[:limit]
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func workerLabel(n int) string {
	return fmt.Sprintf("Worker %d", n)
}
