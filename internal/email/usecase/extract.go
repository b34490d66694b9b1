package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"smart-daily-planner/internal/email"
	"smart-daily-planner/internal/model"
)

// maxDescriptionRunes truncates overly long task descriptions.
const maxDescriptionRunes = 200

// priorityKeywords maps each priority to the trigger words looked up in the
// combined subject and body. Checked in descending priority order; the first
// match wins.
var priorityKeywords = []struct {
	priority model.Priority
	keywords []string
}{
	{model.PriorityUrgent, []string{"urgent", "asap", "immediately", "critical"}},
	{model.PriorityHigh, []string{"important", "priority", "deadline", "due soon"}},
	{model.PriorityNormal, []string{"task", "action required", "follow up", "please review"}},
	{model.PriorityLow, []string{"fyi", "update", "info", "suggestion"}},
}

// dueDatePattern matches phrases like "due by 2025-03-14".
var dueDatePattern = regexp.MustCompile(`(?i)due (?:by|on|before) (\d{4}-\d{2}-\d{2})`)

// Tasks extracts one prioritized task per email, sorted most urgent first.
func (uc *implUseCase) Tasks(ctx context.Context) ([]model.RawTask, error) {
	emails, err := uc.repo.ListEmails(ctx, uc.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", email.ErrListEmails, err)
	}

	tasks := make([]model.RawTask, 0, len(emails))
	for _, e := range emails {
		task := extractTask(e)
		uc.l.Debugf(ctx, "email %s: priority=%s due=%v", e.ID, task.Priority, task.DueDate)
		tasks = append(tasks, task)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
	})

	uc.l.Infof(ctx, "email: extracted %d tasks from %d emails", len(tasks), len(emails))
	return tasks, nil
}

// extractTask derives a task from one email: keyword priority, optional due
// date, subject as description.
func extractTask(e model.Email) model.RawTask {
	content := strings.ToLower(e.Subject + " " + e.Body)

	priority := model.PriorityNormal
	for _, entry := range priorityKeywords {
		if containsAny(content, entry.keywords) {
			priority = entry.priority
			break
		}
	}

	var dueDate *model.Date
	if match := dueDatePattern.FindStringSubmatch(content); match != nil {
		if d, err := model.ParseDate(match[1]); err == nil {
			dueDate = &d
		}
	}

	description := strings.TrimSpace(e.Subject)
	if runes := []rune(description); len(runes) > maxDescriptionRunes {
		description = string(runes[:maxDescriptionRunes])
	}

	return model.RawTask{
		Description:   description,
		Priority:      priority,
		DueDate:       dueDate,
		SourceEmailID: e.ID,
	}
}

func containsAny(content string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(content, k) {
			return true
		}
	}
	return false
}
